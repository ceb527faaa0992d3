package provider

import (
	"github.com/google/wire"
	"github.com/quang08/SmartDoc-SSP/biz/application/service"
	"github.com/quang08/SmartDoc-SSP/biz/domain/escalation"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/config"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/mapper/conversation"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/mapper/practice"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/mapper/stats"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/mq"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/redis"
)

var provider *Provider

func Init() {
	var err error
	provider, err = NewProvider()
	if err != nil {
		panic(err)
	}
}

// Provider 提供controller依赖的对象
type Provider struct {
	Config              *config.Config
	TutorService        service.ITutorService
	ChatService         service.IChatService
	ConversationService service.IConversationService
	QuizService         service.IQuizService
	StatsService        service.IStatsService
	SystemService       service.ISystemService
	StatsConsumer       *mq.StatsConsumer
}

func Get() *Provider {
	return provider
}

var DomainSet = wire.NewSet(
	escalation.NewEngine,
	NewChatApp,
	NewLocker,
)

var ApplicationSet = wire.NewSet(
	service.TutorServiceSet,
	service.ChatServiceSet,
	service.ConversationServiceSet,
	service.QuizServiceSet,
	service.StatsServiceSet,
	service.SystemServiceSet,
)

var InfrastructureSet = wire.NewSet(
	config.NewConfig,
	redis.NewRedis,
	conversation.NewMongoMapper,
	wire.Bind(new(conversation.IMongoMapper), new(*conversation.MongoMapper)),
	wire.Bind(new(escalation.Store), new(*conversation.MongoMapper)),
	practice.NewMongoMapper,
	wire.Bind(new(practice.IMongoMapper), new(*practice.MongoMapper)),
	stats.NewMongoMapper,
	wire.Bind(new(stats.IMongoMapper), new(*stats.MongoMapper)),
	mq.NewInteractionProducer,
	wire.Bind(new(mq.Publisher), new(*mq.InteractionProducer)),
	mq.NewStatsConsumer,
)

var AllProvider = wire.NewSet(
	DomainSet,
	ApplicationSet,
	InfrastructureSet,
)

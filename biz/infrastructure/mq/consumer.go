package mq

import (
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/bytedance/gopkg/util/gopool"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/config"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/mapper/stats"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/xh-polaris/gopkg/util/log"
	"golang.org/x/net/context"
)

// StatsConsumer 消费交互事件并累加统计
type StatsConsumer struct {
	conf   *config.Config
	mapper stats.IMongoMapper
	finish chan struct{}
}

func NewStatsConsumer(c *config.Config, mapper *stats.MongoMapper) *StatsConsumer {
	return &StatsConsumer{
		conf:   c,
		mapper: mapper,
		finish: make(chan struct{}, 1),
	}
}

// Start 开始消费, 收到退出信号后返回, 未配置 RabbitMQ 时直接返回
func (c *StatsConsumer) Start() {
	cn, err := getConn(c.conf)
	if err != nil || cn == nil {
		log.Info("[StatsConsumer] rabbitmq not available, consumer disabled: %v", err)
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 启动消息处理
	gopool.CtxGo(ctx, func() {
		c.consume(ctx)
	})
	// 处理系统信号
	gopool.CtxGo(ctx, func() {
		c.osSignalHandler(ctx)
		c.finish <- struct{}{}
	})

	<-c.finish
}

// 消费信息
func (c *StatsConsumer) consume(ctx context.Context) {
	ch, err := current().Channel()
	if err != nil {
		log.Error("get channel error: %v", err)
		return
	}
	defer func() { _ = ch.Close() }()
	if err = declare(ch, c.conf); err != nil {
		log.Error("declare error: %v", err)
		return
	}
	if err = ch.Qos(1, 0, false); err != nil {
		log.Error("set qos error: %v", err)
		return
	}
	msgs, err := ch.Consume(c.conf.RabbitMQ.Queue, "stats_consumer", false, false, false, false, nil)
	if err != nil {
		log.Error("get consume error: %v", err)
		return
	}

	for msg := range msgs {
		c.handle(ctx, msg)
	}
}

// handle 处理成功时确认, 存储失败时重新入队, 无法解析的消息直接丢弃
func (c *StatsConsumer) handle(ctx context.Context, msg amqp.Delivery) {
	ev, err := decode(msg.Body)
	if err != nil {
		log.Error("丢弃无法解析的消息: %v", err)
		if err = msg.Nack(false, false); err != nil {
			log.Error("nack失败 %v", err)
		}
		return
	}
	if err = c.process(ctx, ev); err != nil {
		// 失败时拒绝并重试
		log.Error("处理失败，消息重新入队: %v", err)
		if err = msg.Nack(false, true); err != nil {
			log.Error("nack失败 %v", err)
		}
	} else if err = msg.Ack(false); err != nil {
		log.Error("ack失败 %v", err)
	}
}

// osSignalHandler 处理os信号
func (c *StatsConsumer) osSignalHandler(ctx context.Context) {
	log.CtxInfo(ctx, "[osSignalHandler] start")
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	osSignal := <-ch
	log.CtxInfo(ctx, "[osSignalHandler] receive signal:[%v]", osSignal)
}

func decode(body []byte) (*InteractionEvent, error) {
	var ev InteractionEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

// process 实际消费逻辑
func (c *StatsConsumer) process(ctx context.Context, ev *InteractionEvent) error {
	if ev.RoomID == "" || ev.Level == "" {
		return nil
	}
	return c.mapper.Incr(ctx, ev.RoomID, ev.Step, ev.Level, ev.Escalated)
}

package mq

import (
	"encoding/json"
	"sync"

	"github.com/bytedance/gopkg/util/gopool"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/config"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/xh-polaris/gopkg/util/log"
	"golang.org/x/net/context"
)

// Publisher 交互事件的发布者
type Publisher interface {
	Publish(ctx context.Context, ev *InteractionEvent)
}

var _ Publisher = (*InteractionProducer)(nil)

// InteractionProducer 交互事件生产者, 未配置 RabbitMQ 时丢弃事件
type InteractionProducer struct {
	mu       sync.Mutex
	conf     *config.Config
	channel  *amqp.Channel
	disabled bool
}

func NewInteractionProducer(c *config.Config) *InteractionProducer {
	p := &InteractionProducer{conf: c}
	cn, err := getConn(c)
	if err != nil {
		log.Error("[InteractionProducer] connect rabbitmq failed, events disabled: %v", err)
	}
	if cn == nil {
		p.disabled = true
	}
	return p
}

// Publish 异步发布, 失败只记录日志, 不影响主流程
func (p *InteractionProducer) Publish(ctx context.Context, ev *InteractionEvent) {
	if p.disabled {
		return
	}
	gopool.CtxGo(ctx, func() {
		if err := p.publish(context.Background(), ev); err != nil {
			log.CtxError(ctx, "[InteractionProducer] publish room=%s step=%d failed: %v", ev.RoomID, ev.Step, err)
		}
	})
}

func (p *InteractionProducer) publish(ctx context.Context, ev *InteractionEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channel == nil || p.channel.IsClosed() {
		ch, err := current().Channel()
		if err != nil {
			return err
		}
		if err = declare(ch, p.conf); err != nil {
			_ = ch.Close()
			return err
		}
		p.channel = ch
	}
	// 发布持久化消息
	return p.channel.PublishWithContext(ctx, p.conf.RabbitMQ.Exchange, p.conf.RabbitMQ.Key,
		false, false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
		})
}

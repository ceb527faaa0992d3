package mq

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/config"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/xh-polaris/gopkg/util/log"
)

// conn 采用单例模式, 复用连接
var (
	conn   *amqp.Connection
	connMu sync.RWMutex
	once   sync.Once
	url    string
)

// getConn 获取连接单例, 未配置 RabbitMQ 时返回 nil
func getConn(c *config.Config) (*amqp.Connection, error) {
	var err error
	once.Do(func() {
		url = c.RabbitMQ.Url
		if url == "" {
			return
		}
		var cn *amqp.Connection
		if cn, err = amqp.Dial(url); err != nil {
			return
		}
		conn = cn
		// 自动重连监听
		go monitor()
	})
	if err != nil {
		return nil, err
	}
	connMu.RLock()
	defer connMu.RUnlock()
	return conn, nil
}

// current 重连后的最新连接
func current() *amqp.Connection {
	connMu.RLock()
	defer connMu.RUnlock()
	return conn
}

// monitor 监听健康状态并重连
func monitor() {
	for {
		reason := <-current().NotifyClose(make(chan *amqp.Error, 1))
		log.Info("RabbitMQ connection closed, reason: %v", reason)

		retries := 0
		for {
			time.Sleep(time.Duration(math.Pow(2, float64(retries))) * time.Second)

			newConn, err := amqp.Dial(url)
			if err == nil {
				connMu.Lock()
				conn = newConn
				connMu.Unlock()
				log.Info("Reconnect to RabbitMQ")
				break
			}
			retries++
			if retries > 5 {
				log.Error("RabbitMQ 断开连接且重连失败: %v", fmt.Errorf("超过最大重连次数5"))
				return
			}
		}
	}
}

// declare 声明交换机、队列并绑定
func declare(ch *amqp.Channel, c *config.Config) error {
	if err := ch.ExchangeDeclare(c.RabbitMQ.Exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return err
	}
	if _, err := ch.QueueDeclare(c.RabbitMQ.Queue, true, false, false, false, nil); err != nil {
		return err
	}
	return ch.QueueBind(c.RabbitMQ.Queue, c.RabbitMQ.Key, c.RabbitMQ.Exchange, false, nil)
}

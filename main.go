package main

import (
	"github.com/bytedance/gopkg/util/gopool"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/obs-opentelemetry/tracing"
	"github.com/quang08/SmartDoc-SSP/biz/adaptor/router"
	"github.com/quang08/SmartDoc-SSP/provider"
	"github.com/xh-polaris/gopkg/util/log"
	"go.opentelemetry.io/contrib/propagators/b3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

func Init() {
	provider.Init()
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(b3.New(), propagation.Baggage{}, propagation.TraceContext{}))
}

func main() {
	Init()
	p := provider.Get()

	// 统计消费者在后台运行
	gopool.Go(p.StatsConsumer.Start)

	tracer, cfg := tracing.NewServerTracer()
	h := server.New(
		server.WithHostPorts(p.Config.ListenOn),
		tracer,
	)
	h.Use(tracing.ServerMiddleware(cfg))

	router.Register(h)
	log.Info("server start, listen on %s", p.Config.ListenOn)
	h.Spin()
}

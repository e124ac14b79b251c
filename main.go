package main

import (
	"homework-show/biz/infrastructure/config"
	"homework-show/provider"

	"github.com/cloudwego/hertz/pkg/app/server"
	prometheus "github.com/hertz-contrib/monitor-prometheus"
	hertztracing "github.com/hertz-contrib/obs-opentelemetry/tracing"
	"github.com/zeromicro/go-zero/core/logx"
)

func main() {
	provider.Init()
	cfg := config.GetConfig()
	logx.DisableStat()

	tracer, tracerCfg := hertztracing.NewServerTracer()
	h := server.Default(
		server.WithHostPorts(cfg.ListenOn),
		server.WithMaxRequestBodySize(int(cfg.Upload.MaxTotalBytes)),
		server.WithTracer(prometheus.NewServerTracer(":9091", "/metrics")),
		tracer,
	)
	h.Use(hertztracing.ServerMiddleware(tracerCfg))

	customizedRegister(h)
	h.Spin()
}

package service

import (
	"context"

	"github.com/google/wire"
	"github.com/quang08/SmartDoc-SSP/biz/adaptor/cmd"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/config"
)

const (
	apiTitle   = "SmartDoc Tutor API"
	apiVersion = "1.0.0"
)

type ISystemService interface {
	Root(ctx context.Context) *cmd.RootResp
	Health(ctx context.Context) *cmd.HealthResp
}

type SystemService struct {
	Config *config.Config
}

var SystemServiceSet = wire.NewSet(
	wire.Struct(new(SystemService), "*"),
	wire.Bind(new(ISystemService), new(*SystemService)),
)

func (s *SystemService) Root(_ context.Context) *cmd.RootResp {
	return &cmd.RootResp{Message: apiTitle + " v" + apiVersion + " is running."}
}

func (s *SystemService) Health(_ context.Context) *cmd.HealthResp {
	return &cmd.HealthResp{Status: "healthy", ApiKeyConfigured: s.Config.ApiKeyConfigured()}
}

package service

import (
	"context"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"github.com/quang08/SmartDoc-SSP/biz/adaptor/cmd"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/consts"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/mapper/stats"
)

type IStatsService interface {
	ListStats(ctx context.Context, req *cmd.ListStatsReq) (*cmd.ListStatsResp, error)
}

type StatsService struct {
	StatsMapper stats.IMongoMapper
}

var StatsServiceSet = wire.NewSet(
	wire.Struct(new(StatsService), "*"),
	wire.Bind(new(IStatsService), new(*StatsService)),
)

// ListStats 房间内各步骤的交互统计, 按步骤升序
func (s *StatsService) ListStats(ctx context.Context, req *cmd.ListStatsReq) (*cmd.ListStatsResp, error) {
	if req.RoomID == "" {
		return nil, consts.ErrValidation.With("room_id is required")
	}
	data, err := s.StatsMapper.FindByRoom(ctx, req.RoomID)
	if err != nil {
		return nil, consts.ErrStorage.With("%v", err)
	}
	out := make([]*cmd.StepStats, 0, len(data))
	if err = copier.Copy(&out, data); err != nil {
		return nil, err
	}
	return &cmd.ListStatsResp{Success: true, Stats: out}, nil
}

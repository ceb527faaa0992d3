package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"github.com/quang08/SmartDoc-SSP/biz/adaptor/cmd"
	"github.com/quang08/SmartDoc-SSP/biz/application/dto"
	"github.com/quang08/SmartDoc-SSP/biz/domain/escalation"
	"github.com/quang08/SmartDoc-SSP/biz/domain/model"
	"github.com/quang08/SmartDoc-SSP/biz/domain/prompt"
	"github.com/quang08/SmartDoc-SSP/biz/domain/slide"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/config"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/consts"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/mapper/conversation"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/mq"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/util"
	"github.com/xh-polaris/gopkg/util/log"
)

// relevantPreview 其他步骤的内容在上下文中保留的字符数
const relevantPreview = 200

type ITutorService interface {
	Ask(ctx context.Context, req *cmd.QnAReq) (*cmd.QnAResp, error)
}

// TutorService 处理针对某一步骤的提问
// 读取已有状态 -> 决定回答等级 -> 调用模型 -> 计算按钮 -> 合并进对话
type TutorService struct {
	Config             *config.Config
	ConversationMapper conversation.IMongoMapper
	Engine             *escalation.Engine
	ChatApp            model.ChatApp
	Publisher          mq.Publisher
}

var TutorServiceSet = wire.NewSet(
	wire.Struct(new(TutorService), "*"),
	wire.Bind(new(ITutorService), new(*TutorService)),
)

func (s *TutorService) Ask(ctx context.Context, req *cmd.QnAReq) (*cmd.QnAResp, error) {
	if err := validateQnA(req); err != nil {
		return nil, err
	}

	// 读取该步骤此前的状态, 只读, 不加锁
	conv, err := s.ConversationMapper.FindActive(ctx, req.RoomID, req.UserID)
	if err != nil && !errors.Is(err, consts.ErrNotFound) {
		return nil, consts.ErrStorage.With("%v", err)
	}
	state := escalation.Inspect(conv, req.Step)
	requested := escalation.ParseLevel(req.ResponseLevel)
	effective := escalation.DecideEffectiveLevel(requested, state.HintCount)

	stepContent, hasImages := currentContent(req.ExtractedContent)
	relevantInfo, relevantSteps := relatedContext(req.StructuredData, req.Step)

	// 调用模型, 失败时不写入任何状态
	out, err := s.generate(ctx, req, effective, stepContent, hasImages, relevantInfo)
	if err != nil {
		return nil, err
	}

	hintsAfter := state.HintCount
	if effective == escalation.Hint {
		hintsAfter++
	}
	displayed, removed := escalation.NextAffordances(effective, hintsAfter)
	displayed, removed = escalation.Narrow(displayed, removed, state)

	stepName := req.StepName
	if stepName == "" {
		stepName = out.StepName
	}
	entry := &conversation.StepEntry{
		Step:     req.Step,
		StepName: stepName,
		Message:  req.Message,
		Interaction: &conversation.Interaction{
			CreatedAt:        time.Now().UTC(),
			ResponseLevel:    effective.String(),
			UsedStepContent:  stepContent != "",
			Answer:           out.Answer,
			ButtonsDisplayed: displayed,
			OptionsRemoved:   removed,
		},
		RelevantInfo:  relevantInfo,
		RelevantSteps: relevantSteps,
	}
	if req.CodeContext != nil {
		entry.Interaction.CodeContext = new(conversation.CodeContext)
		if err = copier.Copy(entry.Interaction.CodeContext, req.CodeContext); err != nil {
			return nil, err
		}
	}

	labName := req.LabName
	if labName == "" {
		labName = consts.DefaultLabName
	}
	id, err := s.Engine.Merge(ctx, &escalation.Target{
		RoomID:    req.RoomID,
		DocID:     req.DocID,
		UserID:    req.UserID,
		UserEmail: req.UserEmail,
		LabName:   labName,
	}, entry)
	if err != nil {
		log.CtxError(ctx, "[Ask] merge room=%s user=%s step=%d failed: %v", req.RoomID, req.UserID, req.Step, err)
		return nil, err
	}

	s.Publisher.Publish(ctx, &mq.InteractionEvent{
		ConversationID: id,
		RoomID:         req.RoomID,
		UserID:         req.UserID,
		Step:           req.Step,
		Level:          effective.String(),
		Requested:      requested.String(),
		HintCount:      hintsAfter,
		Escalated:      state.Exists,
		CreatedAt:      entry.Interaction.CreatedAt,
	})

	return &cmd.QnAResp{
		Success: true,
		QnAContent: &cmd.QnAContent{
			Step:             req.Step,
			StepName:         stepName,
			Answer:           out.Answer,
			RelevantInfo:     relevantInfo,
			RelevantSteps:    relevantSteps,
			RequestedLevel:   requested.String(),
			ResponseLevel:    effective.String(),
			HintCount:        hintsAfter,
			ButtonsDisplayed: displayed,
			OptionsRemoved:   removed,
			UsedStepContent:  entry.Interaction.UsedStepContent,
			ConversationID:   id,
		},
		Message: fmt.Sprintf("Successfully generated Q&A content for step %d: %s (Conversation ID: %s)", req.Step, stepName, id),
	}, nil
}

// generate 渲染提示词并调用模型, 返回的 answer 不能为空
func (s *TutorService) generate(ctx context.Context, req *cmd.QnAReq, level escalation.Level,
	stepContent string, hasImages bool, relevantInfo string) (*dto.QnAOutput, error) {
	data := &prompt.QnAData{
		Language:     s.Config.Model.Language,
		Level:        level.String(),
		Step:         req.Step,
		StepName:     req.StepName,
		Message:      req.Message,
		HasImages:    hasImages,
		StepContent:  stepContent,
		RelevantInfo: relevantInfo,
	}
	if cc := req.CodeContext; cc != nil && cc.Snippet != "" {
		data.Code = &prompt.Code{Language: cc.Language, Snippet: cc.Snippet, Lines: cc.Lines}
	}
	text, err := prompt.QnA(data)
	if err != nil {
		return nil, consts.ErrModel.With("render prompt: %v", err)
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.Config.Model.Timeout)*time.Second)
	defer cancel()
	raw, err := s.ChatApp.Call(ctx, &model.CallReq{
		System: prompt.System(),
		Prompt: text,
		JSON:   true,
	})
	if err != nil {
		log.CtxError(ctx, "[Ask] call model failed: %v", err)
		return nil, consts.ErrModel.With("%v", err)
	}

	var out dto.QnAOutput
	if err = model.Decode(raw, &out); err != nil {
		return nil, consts.ErrModel.With("%v", err)
	}
	if strings.TrimSpace(out.Answer) == "" {
		return nil, consts.ErrModel.With("answer is missing in model output")
	}
	return &out, nil
}

func validateQnA(req *cmd.QnAReq) error {
	switch {
	case strings.TrimSpace(req.RoomID) == "":
		return consts.ErrValidation.With("room_id is required")
	case strings.TrimSpace(req.UserID) == "":
		return consts.ErrValidation.With("user_id is required")
	case strings.TrimSpace(req.Message) == "":
		return consts.ErrValidation.With("message is required")
	case req.Step < 0:
		return consts.ErrValidation.With("step must not be negative, got %d", req.Step)
	}
	return nil
}

// currentContent 当前步骤的文字, 以及是否带有图片
func currentContent(items []*cmd.ExtractedContent) (string, bool) {
	var lines []string
	hasImages := false
	for _, it := range items {
		if it == nil {
			continue
		}
		if t := strings.TrimSpace(it.TextContent); t != "" {
			lines = append(lines, t)
		}
		if len(it.Images) > 0 {
			hasImages = true
		}
	}
	return strings.Join(lines, "\n"), hasImages
}

// relatedContext 其他步骤的内容摘要和步骤号, 只有存在有内容的其他步骤时才返回步骤号
func relatedContext(data *cmd.StructuredData, step int) (string, []int) {
	steps := []int{}
	if data == nil || len(data.Content) == 0 {
		return "", steps
	}
	var lines []string
	for _, s := range data.Content {
		if s == nil || s.Step == step {
			continue
		}
		steps = append(steps, s.Step)
		text := slide.Text(s.HTML)
		if text == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("- Bước %d (%s): %s...", s.Step, s.Title, util.Truncate(text, relevantPreview)))
	}
	if len(lines) == 0 {
		return "", []int{}
	}
	return strings.Join(lines, "\n"), steps
}

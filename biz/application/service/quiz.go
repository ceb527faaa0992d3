package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"github.com/quang08/SmartDoc-SSP/biz/adaptor/cmd"
	"github.com/quang08/SmartDoc-SSP/biz/application/dto"
	"github.com/quang08/SmartDoc-SSP/biz/domain/model"
	"github.com/quang08/SmartDoc-SSP/biz/domain/prompt"
	"github.com/quang08/SmartDoc-SSP/biz/domain/slide"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/config"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/consts"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/mapper/practice"
	"github.com/xh-polaris/gopkg/util/log"
	"github.com/zeromicro/go-zero/core/mr"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IQuizService interface {
	GenerateQuiz(ctx context.Context, req *cmd.QuizReq) (*cmd.QuizResp, error)
	GetTests(ctx context.Context, req *cmd.GetTestsReq) (*cmd.TestsResp, error)
	GetQuestions(ctx context.Context, req *cmd.GetQuestionsReq) (*cmd.QuestionsResp, error)
	CheckAvailability(ctx context.Context, req *cmd.CheckAvailabilityReq) (*cmd.AvailabilityResp, error)
}

type QuizService struct {
	Config         *config.Config
	PracticeMapper practice.IMongoMapper
	ChatApp        model.ChatApp
}

var QuizServiceSet = wire.NewSet(
	wire.Struct(new(QuizService), "*"),
	wire.Bind(new(IQuizService), new(*QuizService)),
)

// GenerateQuiz 每页课件并行出题, 每个主题保存为一份练习题
// 任意一页失败则整体失败, 不写入任何练习题
func (s *QuizService) GenerateQuiz(ctx context.Context, req *cmd.QuizReq) (*cmd.QuizResp, error) {
	if len(req.Content) == 0 {
		return nil, consts.ErrValidation.With("content is empty")
	}
	labName := req.LabName
	if labName == "" {
		labName = consts.DefaultLabName
	}

	topics := make([]*cmd.TopicQuiz, len(req.Content))
	fns := make([]func() error, 0, len(req.Content))
	for i, sc := range req.Content {
		i, sc := i, sc
		fns = append(fns, func() error {
			t, err := s.topicQuiz(ctx, sc)
			if err != nil {
				return err
			}
			topics[i] = t
			return nil
		})
	}
	if err := mr.Finish(fns...); err != nil {
		log.CtxError(ctx, "[GenerateQuiz] lab=%s failed: %v", labName, err)
		return nil, err
	}

	now := time.Now().UTC()
	tests := make([]*practice.PracticeTest, 0, len(topics))
	for _, t := range topics {
		pt := &practice.PracticeTest{
			PracticeTestID:  uuid.NewString(),
			StudyGuideTitle: labName,
			SectionTitle:    t.Topic,
			GuideType:       consts.GuideSlides,
			CreatedAt:       now,
			RoomID:          req.RoomID,
			DocID:           req.DocID,
			UserID:          req.UserID,
			UserEmail:       req.UserEmail,
		}
		if err := copier.Copy(&pt.Questions, t.Quizzes.MultipleChoice); err != nil {
			return nil, err
		}
		if err := copier.Copy(&pt.ShortAnswer, t.Quizzes.ShortAnswer); err != nil {
			return nil, err
		}
		tests = append(tests, pt)
	}
	if err := s.PracticeMapper.InsertMany(ctx, tests); err != nil {
		return nil, consts.ErrStorage.With("save practice tests: %v", err)
	}

	id := tests[0].ID.Hex()
	return &cmd.QuizResp{
		ID:              id,
		PracticeGuideID: id,
		LabName:         req.LabName,
		RoomID:          req.RoomID,
		DocID:           req.DocID,
		UserID:          req.UserID,
		UserEmail:       req.UserEmail,
		Topics:          topics,
		Success:         true,
		Message:         fmt.Sprintf("Generated %d quizzes for lab '%s'", len(topics), req.LabName),
	}, nil
}

// topicQuiz 为一页课件(含子页)出题, 并用原文回填每道题的来源步骤
func (s *QuizService) topicQuiz(ctx context.Context, sc *cmd.SlideContent) (*cmd.TopicQuiz, error) {
	sl := new(slide.Slide)
	if err := copier.CopyWithOption(sl, sc, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	structure := slide.Classify(sl.HTML)
	topic, err := slide.ExtractTopic(sl)
	if err != nil {
		return nil, consts.ErrValidation.With("parse slide %q: %v", sl.Title, err)
	}

	text, err := prompt.Quiz(&prompt.QuizData{
		Language:    s.Config.Model.Language,
		Title:       topic.Title,
		Notes:       structure.Notes(),
		KeyPoints:   topic.KeyPoints,
		Explanation: topic.Explanation,
		Points:      topic.Points,
	})
	if err != nil {
		return nil, consts.ErrModel.With("render prompt: %v", err)
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.Config.Model.Timeout)*time.Second)
	defer cancel()
	raw, err := s.ChatApp.Call(ctx, &model.CallReq{
		System: prompt.System(),
		Prompt: text,
		Model:  s.Config.QuizModel(),
	})
	if err != nil {
		return nil, consts.ErrModel.With("slide %q: %v", sl.Title, err)
	}
	var out dto.QuizOutput
	if err = model.Decode(raw, &out); err != nil {
		return nil, consts.ErrModel.With("slide %q: %v", sl.Title, err)
	}

	quiz := &cmd.Quiz{
		MultipleChoice: make([]*cmd.MultipleChoice, 0, len(out.Quizzes.MultipleChoice)),
		ShortAnswer:    make([]*cmd.ShortAnswer, 0, len(out.Quizzes.ShortAnswer)),
	}
	for _, q := range out.Quizzes.MultipleChoice {
		if q == nil {
			continue
		}
		quiz.MultipleChoice = append(quiz.MultipleChoice, &cmd.MultipleChoice{
			Question:    q.Question,
			Choices:     q.Choices,
			Correct:     q.Correct,
			Explanation: q.Explanation,
			SourcePage:  slide.FindStep(q.SourceText, topic.Points),
			SourceText:  q.SourceText,
		})
	}
	for _, q := range out.Quizzes.ShortAnswer {
		if q == nil {
			continue
		}
		quiz.ShortAnswer = append(quiz.ShortAnswer, &cmd.ShortAnswer{
			Question:    q.Question,
			IdealAnswer: q.IdealAnswer,
			SourcePage:  slide.FindStep(q.SourceText, topic.Points),
			SourceText:  q.SourceText,
		})
	}
	return &cmd.TopicQuiz{Topic: topic.Title, Quizzes: quiz}, nil
}

func (s *QuizService) GetTests(ctx context.Context, req *cmd.GetTestsReq) (*cmd.TestsResp, error) {
	data, total, err := s.PracticeMapper.FindMany(ctx, &req.Paging)
	if err != nil {
		return nil, consts.ErrStorage.With("%v", err)
	}
	tests, err := toPracticeTests(data)
	if err != nil {
		return nil, err
	}
	return &cmd.TestsResp{
		Success: true,
		Tests:   tests,
		Total:   total,
		Message: fmt.Sprintf("Retrieved %d practice tests", len(tests)),
	}, nil
}

func (s *QuizService) GetQuestions(ctx context.Context, req *cmd.GetQuestionsReq) (*cmd.QuestionsResp, error) {
	data, _, err := s.PracticeMapper.FindMany(ctx, &cmd.Paging{Limit: req.Limit})
	if err != nil {
		return nil, consts.ErrStorage.With("%v", err)
	}
	questions, err := toPracticeTests(data)
	if err != nil {
		return nil, err
	}
	return &cmd.QuestionsResp{
		Success:   true,
		Questions: questions,
		Total:     len(questions),
	}, nil
}

func (s *QuizService) CheckAvailability(ctx context.Context, req *cmd.CheckAvailabilityReq) (*cmd.AvailabilityResp, error) {
	if strings.TrimSpace(req.RoomID) == "" {
		return nil, consts.ErrValidation.With("roomId is required")
	}
	count, err := s.PracticeMapper.CountByRoom(ctx, req.RoomID)
	if err != nil {
		return nil, consts.ErrStorage.With("%v", err)
	}
	return &cmd.AvailabilityResp{Available: count > 0, Count: count}, nil
}

// objectIDConverter 文档 _id 以十六进制字符串返回
var objectIDConverter = copier.TypeConverter{
	SrcType: primitive.ObjectID{},
	DstType: copier.String,
	Fn: func(src any) (any, error) {
		return src.(primitive.ObjectID).Hex(), nil
	},
}

func toPracticeTests(data []*practice.PracticeTest) ([]*cmd.PracticeTest, error) {
	out := make([]*cmd.PracticeTest, 0, len(data))
	for _, d := range data {
		pt := new(cmd.PracticeTest)
		if err := copier.CopyWithOption(pt, d, copier.Option{
			DeepCopy:   true,
			Converters: []copier.TypeConverter{objectIDConverter},
		}); err != nil {
			return nil, err
		}
		out = append(out, pt)
	}
	return out, nil
}

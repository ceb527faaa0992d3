package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/quang08/SmartDoc-SSP/biz/adaptor/controller/chat"
	"github.com/quang08/SmartDoc-SSP/biz/adaptor/controller/conversation"
	"github.com/quang08/SmartDoc-SSP/biz/adaptor/controller/quiz"
	"github.com/quang08/SmartDoc-SSP/biz/adaptor/controller/stats"
	"github.com/quang08/SmartDoc-SSP/biz/adaptor/controller/system"
)

func Register(r *server.Hertz) {
	root := r.Group("/", _rootMw()...)
	root.GET("/", system.Root)
	root.GET("/health", system.Health)

	api := root.Group("/", _apiMw()...)
	{
		_chat := api.Group("/chat")
		_chat.POST("", chat.Ask)
		_chat.GET("/ws", append(_chatwsMw(), chat.LongChat)...)
	}
	{
		_conversation := api.Group("/conversation")
		_conversation.GET("/id/:conversation_id", conversation.GetConversationByID)
		_conversation.GET("/:room_id/:user_id", conversation.GetConversation)
		_conversation.DELETE("/:room_id/:user_id", conversation.DeleteConversation)
		_conversation.DELETE("/:room_id/:user_id/step/:step", conversation.DeleteStep)
	}
	{
		api.POST("/generate-quiz", quiz.GenerateQuiz)
		api.GET("/get-tests", quiz.GetTests)
		api.GET("/questions", quiz.GetQuestions)
		api.GET("/check-availability", quiz.CheckAvailability)
	}
	{
		api.GET("/stats/:room_id", stats.ListStats)
	}
}

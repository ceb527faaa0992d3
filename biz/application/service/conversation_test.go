package service

import (
	"context"
	"testing"

	"github.com/quang08/SmartDoc-SSP/biz/adaptor/cmd"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/mapper/practice"
)

func TestConversationLifecycle(t *testing.T) {
	f := newTutorFixture(okReply)
	ctx := context.Background()
	tests := &memPractice{tests: []*practice.PracticeTest{
		{RoomID: "R1", UserID: "U1", SectionTitle: "Vòng lặp"},
		{RoomID: "R1", UserID: "U2", SectionTitle: "Vòng lặp"},
	}}
	svc := &ConversationService{ConversationMapper: f.store, PracticeMapper: tests}

	resp, err := svc.GetConversation(ctx, &cmd.GetConversationReq{RoomID: "R1", UserID: "U1"})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Success || resp.Error != "Conversation not found" {
		t.Fatalf("missing conversation should not succeed: %+v", resp)
	}

	asked, err := f.svc.Ask(ctx, askReq("Hint"))
	if err != nil {
		t.Fatal(err)
	}
	id := asked.QnAContent.ConversationID

	resp, err = svc.GetConversation(ctx, &cmd.GetConversationReq{RoomID: "R1", UserID: "U1"})
	if err != nil || !resp.Success {
		t.Fatalf("get conversation: %+v, %v", resp, err)
	}
	c := resp.Conversation
	if c.ConversationID != id || c.LabName != "Unknown Lab" || len(c.Steps) != 1 {
		t.Fatalf("unexpected conversation %+v", c)
	}
	if c.Steps[0].Interaction == nil || c.Steps[0].Interaction.ResponseLevel != "Hint" {
		t.Fatalf("interaction not copied: %+v", c.Steps[0])
	}

	del, err := svc.DeleteConversation(ctx, &cmd.DeleteConversationReq{RoomID: "R1", UserID: "U1"})
	if err != nil {
		t.Fatal(err)
	}
	if !del.Success || del.DeletedCount != 2 {
		t.Fatalf("delete = %+v", del)
	}
	if len(tests.tests) != 1 || tests.tests[0].UserID != "U2" {
		t.Fatalf("practice tests of other users were touched: %+v", tests.tests)
	}

	resp, _ = svc.GetConversation(ctx, &cmd.GetConversationReq{RoomID: "R1", UserID: "U1"})
	if resp.Success {
		t.Fatalf("deleted conversation still active")
	}
	// 按 id 仍能查到已删除的对话
	resp, err = svc.GetConversationByID(ctx, &cmd.GetConversationByIDReq{ConversationID: id})
	if err != nil || !resp.Success || !resp.Conversation.Deleted {
		t.Fatalf("get by id = %+v, %v", resp, err)
	}

	// 删除后再次提问开启新的对话
	again, err := f.svc.Ask(ctx, askReq("Hint"))
	if err != nil {
		t.Fatal(err)
	}
	if again.QnAContent.ConversationID == id || again.QnAContent.HintCount != 1 {
		t.Fatalf("new conversation expected, got %+v", again.QnAContent)
	}
}

func TestDeleteStepResetsHintCount(t *testing.T) {
	f := newTutorFixture(okReply)
	ctx := context.Background()
	svc := &ConversationService{ConversationMapper: f.store, PracticeMapper: new(memPractice)}

	miss, err := svc.DeleteStep(ctx, &cmd.DeleteStepReq{RoomID: "R1", UserID: "U1", Step: 3})
	if err != nil || miss.Success {
		t.Fatalf("delete step without conversation = %+v, %v", miss, err)
	}

	for i := 0; i < 2; i++ {
		if _, err = f.svc.Ask(ctx, askReq("Hint")); err != nil {
			t.Fatal(err)
		}
	}
	resp, err := svc.DeleteStep(ctx, &cmd.DeleteStepReq{RoomID: "R1", UserID: "U1", Step: 3})
	if err != nil || !resp.Success || !resp.Deleted {
		t.Fatalf("delete step = %+v, %v", resp, err)
	}
	resp, err = svc.DeleteStep(ctx, &cmd.DeleteStepReq{RoomID: "R1", UserID: "U1", Step: 3})
	if err != nil || !resp.Success || resp.Deleted {
		t.Fatalf("second delete = %+v, %v", resp, err)
	}

	asked, err := f.svc.Ask(ctx, askReq("Hint"))
	if err != nil {
		t.Fatal(err)
	}
	if asked.QnAContent.ResponseLevel != "Hint" || asked.QnAContent.HintCount != 1 {
		t.Fatalf("deleted step still counted: %+v", asked.QnAContent)
	}
	if len(asked.QnAContent.ButtonsDisplayed) != 4 {
		t.Fatalf("buttons of the deleted entry leaked: %v", asked.QnAContent.ButtonsDisplayed)
	}
}

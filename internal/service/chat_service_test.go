package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"ecotrack-be/internal/entity"
	"ecotrack-be/internal/repository/contract"
	"ecotrack-be/internal/repository/specification"
	"ecotrack-be/internal/repository/unitofwork"
	"ecotrack-be/pkg/chatbot"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

// fakeChatRepo records every Create call, optionally failing all of them.
type fakeChatRepo struct {
	created   []*entity.ChatMessage
	createErr error
	findAll   []*entity.ChatMessage
	total     int64
}

func (f *fakeChatRepo) Create(_ context.Context, m *entity.ChatMessage) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, m)
	return nil
}

func (f *fakeChatRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.ChatMessage, error) {
	return f.findAll, nil
}

func (f *fakeChatRepo) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	return f.total, nil
}

type fakeUnitOfWork struct {
	chatRepo contract.ChatMessageRepository
}

func (f *fakeUnitOfWork) Begin(context.Context) error { return nil }
func (f *fakeUnitOfWork) Commit() error               { return nil }
func (f *fakeUnitOfWork) Rollback() error             { return nil }

func (f *fakeUnitOfWork) UserRepository() contract.UserRepository                       { return nil }
func (f *fakeUnitOfWork) WasteEntryRepository() contract.WasteEntryRepository           { return nil }
func (f *fakeUnitOfWork) WasteGoalRepository() contract.WasteGoalRepository             { return nil }
func (f *fakeUnitOfWork) AchievementRepository() contract.AchievementRepository         { return nil }
func (f *fakeUnitOfWork) RecyclingCenterRepository() contract.RecyclingCenterRepository { return nil }
func (f *fakeUnitOfWork) PickupScheduleRepository() contract.PickupScheduleRepository   { return nil }
func (f *fakeUnitOfWork) ChatMessageRepository() contract.ChatMessageRepository         { return f.chatRepo }

type fakeFactory struct {
	uow unitofwork.UnitOfWork
}

func (f *fakeFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork { return f.uow }

func newChatServiceForTest(repo *fakeChatRepo) IChatService {
	return NewChatService(
		&fakeFactory{uow: &fakeUnitOfWork{chatRepo: repo}},
		chatbot.NewResponder(),
		nopLogger{},
	)
}

func TestHandleMessageStoresHumanThenBot(t *testing.T) {
	repo := &fakeChatRepo{}
	svc := newChatServiceForTest(repo)
	userID := uuid.New()

	response, timestamp, err := svc.HandleMessage(context.Background(), userID, "how do I recycle glass?")
	require.NoError(t, err)
	assert.NotEmpty(t, response)

	require.Len(t, repo.created, 2)

	human := repo.created[0]
	assert.Equal(t, userID, human.UserId)
	assert.Equal(t, "how do I recycle glass?", human.Message)
	assert.False(t, human.IsBot)
	assert.Nil(t, human.Response)
	assert.Equal(t, timestamp, human.CreatedAt)

	bot := repo.created[1]
	assert.Equal(t, userID, bot.UserId)
	assert.True(t, bot.IsBot)
	require.NotNil(t, bot.Response)
	assert.Equal(t, response, *bot.Response)
	assert.True(t, bot.CreatedAt.After(human.CreatedAt), "bot record must sort after the human record")
}

func TestHandleMessageMatchesResponderOutput(t *testing.T) {
	repo := &fakeChatRepo{}
	svc := newChatServiceForTest(repo)

	responder := chatbot.NewResponder()
	for _, input := range []string{"hello", "pickup schedule please", "zzz nothing matches this"} {
		response, _, err := svc.HandleMessage(context.Background(), uuid.New(), input)
		require.NoError(t, err)
		assert.Equal(t, responder.Respond(input), response)
	}
}

func TestHandleMessageStorageFaultStillReplies(t *testing.T) {
	repo := &fakeChatRepo{createErr: errors.New("connection refused")}
	svc := newChatServiceForTest(repo)

	response, _, err := svc.HandleMessage(context.Background(), uuid.New(), "hello")
	require.NoError(t, err, "a storage fault must not withhold the reply")
	assert.NotEmpty(t, response)
	assert.Empty(t, repo.created)
}

func TestGetHistoryMapsRecords(t *testing.T) {
	userID := uuid.New()
	reply := "Here is how."
	now := time.Now().UTC()

	repo := &fakeChatRepo{
		total: 2,
		findAll: []*entity.ChatMessage{
			{Id: uuid.New(), UserId: userID, Message: "how?", IsBot: false, CreatedAt: now},
			{Id: uuid.New(), UserId: userID, Message: "how?", Response: &reply, IsBot: true, CreatedAt: now.Add(time.Millisecond)},
		},
	}
	svc := newChatServiceForTest(repo)

	history, err := svc.GetHistory(context.Background(), userID, 50, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), history.Total)
	require.Len(t, history.Messages, 2)

	assert.False(t, history.Messages[0].IsBot)
	assert.Nil(t, history.Messages[0].Response)
	assert.True(t, history.Messages[1].IsBot)
	require.NotNil(t, history.Messages[1].Response)
	assert.Equal(t, reply, *history.Messages[1].Response)
}

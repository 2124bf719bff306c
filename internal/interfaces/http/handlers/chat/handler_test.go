package chat

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leafsmp/internal/application/chat/dto"
	"leafsmp/internal/application/chat/usecases"
	"leafsmp/internal/interfaces/http/handlers/common"
	"leafsmp/internal/interfaces/http/handlers/testutil"
)

type mockSendMessageUC struct {
	result *dto.MessageDTO
	err    error
	got    usecases.SendMessageCommand
	called bool
}

func (m *mockSendMessageUC) Execute(_ context.Context, cmd usecases.SendMessageCommand) (*dto.MessageDTO, error) {
	m.called = true
	m.got = cmd
	return m.result, m.err
}

type mockListMessagesUC struct {
	result []*dto.MessageDTO
	err    error
	got    usecases.ListMessagesQuery
}

func (m *mockListMessagesUC) Execute(_ context.Context, query usecases.ListMessagesQuery) ([]*dto.MessageDTO, error) {
	m.got = query
	return m.result, m.err
}

type mockStreamMessagesUC struct {
	messages []*dto.MessageDTO
	err      error
	got      usecases.StreamMessagesQuery
}

func (m *mockStreamMessagesUC) Execute(_ context.Context, query usecases.StreamMessagesQuery) (<-chan *dto.MessageDTO, error) {
	m.got = query
	if m.err != nil {
		return nil, m.err
	}
	ch := make(chan *dto.MessageDTO, len(m.messages))
	for _, msg := range m.messages {
		ch <- msg
	}
	close(ch)
	return ch, nil
}

type testDeps struct {
	send   *mockSendMessageUC
	list   *mockListMessagesUC
	stream *mockStreamMessagesUC
}

func newTestHandler() (*ChatHandler, *testDeps) {
	deps := &testDeps{
		send:   &mockSendMessageUC{},
		list:   &mockListMessagesUC{},
		stream: &mockStreamMessagesUC{},
	}
	log := testutil.NewMockLogger()
	h := NewChatHandler(deps.send, deps.list, deps.stream, common.NewSSEHandlerBase(log), log)
	return h, deps
}

func textPtr(s string) *string { return &s }

func sampleMessage(id uint) *dto.MessageDTO {
	return &dto.MessageDTO{
		ID:         id,
		TicketID:   7,
		Sender:     "user",
		SenderName: "Steve",
		Message:    textPtr("hello"),
		CreatedAt:  time.Date(2024, 4, 1, 9, 0, int(id), 0, time.UTC),
	}
}

func TestSendMessage(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		body       any
		admin      string
		wantStatus int
		wantCalled bool
	}{
		{
			name:       "user message",
			id:         "7",
			body:       map[string]string{"sender": "user", "senderName": "Steve", "message": "hi"},
			wantStatus: http.StatusCreated,
			wantCalled: true,
		},
		{
			name:       "admin identity forwarded",
			id:         "7",
			body:       map[string]string{"sender": "admin", "message": "on it"},
			admin:      "Kanhaiya",
			wantStatus: http.StatusCreated,
			wantCalled: true,
		},
		{
			name:       "unknown sender",
			id:         "7",
			body:       map[string]string{"sender": "bot", "message": "hi"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "non numeric ticket id",
			id:         "LEAF-1",
			body:       map[string]string{"sender": "user", "message": "hi"},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deps := newTestHandler()
			deps.send.result = sampleMessage(1)

			c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets/"+tt.id+"/messages", tt.body)
			testutil.SetURLParam(c, "id", tt.id)
			if tt.admin != "" {
				testutil.SetAdminContext(c, tt.admin)
			}
			h.SendMessage(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCalled, deps.send.called)
			if tt.wantCalled {
				assert.Equal(t, uint(7), deps.send.got.TicketID)
				assert.Equal(t, tt.admin, deps.send.got.AdminUsername)
			}
		})
	}
}

func TestListMessages(t *testing.T) {
	h, deps := newTestHandler()
	deps.list.result = []*dto.MessageDTO{sampleMessage(4), sampleMessage(5)}

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets/7/messages", nil)
	testutil.SetURLParam(c, "id", "7")
	testutil.SetQueryParams(c, map[string]string{"after": "3"})
	h.ListMessages(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, usecases.ListMessagesQuery{TicketID: 7, AfterID: 3}, deps.list.got)

	var got []dto.MessageDTO
	require.NoError(t, testutil.ParseResponse(w, &got))
	require.Len(t, got, 2)
	assert.Equal(t, uint(4), got[0].ID)
}

func TestListMessages_BadCursor(t *testing.T) {
	h, _ := newTestHandler()

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets/7/messages", nil)
	testutil.SetURLParam(c, "id", "7")
	testutil.SetQueryParams(c, map[string]string{"after": "latest"})
	h.ListMessages(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStreamMessages(t *testing.T) {
	h, deps := newTestHandler()
	deps.stream.messages = []*dto.MessageDTO{sampleMessage(4), sampleMessage(5)}

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets/7/messages/stream", nil)
	testutil.SetURLParam(c, "id", "7")
	testutil.SetQueryParams(c, map[string]string{"after": "1"})
	c.Request.Header.Set("Last-Event-ID", "3")
	h.StreamMessages(c)

	assert.Equal(t, usecases.StreamMessagesQuery{TicketID: 7, AfterID: 3}, deps.stream.got)
	assert.Equal(t, common.SSEContentType, w.Header().Get("Content-Type"))

	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, ": connected\n\n"))
	assert.Contains(t, body, "id: 4\nevent: message\ndata: ")
	assert.Contains(t, body, "id: 5\nevent: message\ndata: ")
	assert.Less(t, strings.Index(body, "id: 4"), strings.Index(body, "id: 5"))
}

func TestStreamMessages_SubscribeFailure(t *testing.T) {
	h, deps := newTestHandler()
	deps.stream.err = assert.AnError

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets/7/messages/stream", nil)
	testutil.SetURLParam(c, "id", "7")
	h.StreamMessages(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hragent/pkg/config"
	"hragent/pkg/darwinbox"
	"hragent/pkg/tooling"
)

type scripted struct {
	status int
	body   string
}

// modelServer plays back scripted chat completion responses and records
// every request body for transcript assertions.
type modelServer struct {
	server    *httptest.Server
	responses []scripted
	requests  [][]byte
}

func (m *modelServer) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	m.requests = append(m.requests, body)

	i := len(m.requests) - 1
	if i >= len(m.responses) {
		i = len(m.responses) - 1
	}
	resp := m.responses[i]

	w.Header().Set("Content-Type", "application/json")
	if resp.status != 0 {
		w.WriteHeader(resp.status)
	}
	_, _ = w.Write([]byte(resp.body))
}

func textCompletion(text string) scripted {
	return scripted{body: fmt.Sprintf(
		`{"id":"chatcmpl-1","object":"chat.completion","created":1,"model":"test-model","choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":%s}}]}`,
		strconv.Quote(text))}
}

func toolCallCompletion(name, arguments string) scripted {
	return scripted{body: fmt.Sprintf(
		`{"id":"chatcmpl-1","object":"chat.completion","created":1,"model":"test-model","choices":[{"index":0,"finish_reason":"tool_calls","message":{"role":"assistant","content":"","tool_calls":[{"id":"call_1","type":"function","function":{"name":%s,"arguments":%s}}]}}]}`,
		strconv.Quote(name), strconv.Quote(arguments))}
}

func newTestAgent(t *testing.T, responses []scripted, hrBody string) (*Agent, *modelServer, *int) {
	t.Helper()

	hrRequests := 0
	hrServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hrRequests++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(hrBody))
	}))
	t.Cleanup(hrServer.Close)

	registry := tooling.NewRegistry(darwinbox.New(&config.Config{Domain: hrServer.URL, Username: "u", Password: "p"}))

	ms := &modelServer{responses: responses}
	ms.server = httptest.NewServer(http.HandlerFunc(ms.handle))
	t.Cleanup(ms.server.Close)

	client := openai.NewClient(
		option.WithBaseURL(ms.server.URL),
		option.WithAPIKey("test"),
		option.WithMaxRetries(0),
	)
	return New(client, registry, "test-model", "You are Darwin.", nil, ""), ms, &hrRequests
}

func TestTurnDirectAnswer(t *testing.T) {
	hrAgent, ms, hrRequests := newTestAgent(t, []scripted{textCompletion("There are 42 employees.")}, `{}`)

	answer := hrAgent.Turn(context.Background(), "How many employees are there?")

	assert.Equal(t, "There are 42 employees.", answer)
	assert.Len(t, ms.requests, 1)
	assert.Zero(t, *hrRequests)

	// system + user + assistant
	require.Len(t, hrAgent.Params().Messages, 3)
	assert.Equal(t, "There are 42 employees.", hrAgent.Params().Messages[2].OfAssistant.Content.OfString.String())
}

func TestTurnWithToolCall(t *testing.T) {
	hrAgent, ms, hrRequests := newTestAgent(t,
		[]scripted{
			toolCallCompletion("get_leave_balance", `{"employee_nos":["E100","E101"]}`),
			textCompletion("E100 has 4.5 days and E101 has 2 days left."),
		},
		`{"balances":[{"employee_no":"E100","balance":4.5},{"employee_no":"E101","balance":2}]}`,
	)

	answer := hrAgent.Turn(context.Background(), "Show leave balance for employee E100 and E101")

	assert.Equal(t, "E100 has 4.5 days and E101 has 2 days left.", answer)
	assert.Equal(t, 1, *hrRequests, "exactly one tool call is served per turn")
	require.Len(t, ms.requests, 2)

	// The follow-up request must carry the tool result envelope back to the
	// model on the same conversation.
	var followUp struct {
		Messages []map[string]any `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(ms.requests[1], &followUp))
	require.Len(t, followUp.Messages, 4) // system, user, assistant tool call, tool result

	toolMsg := followUp.Messages[3]
	assert.Equal(t, "tool", toolMsg["role"])
	assert.Equal(t, "call_1", toolMsg["tool_call_id"])
	content, _ := toolMsg["content"].(string)
	assert.Contains(t, content, `"status":"success"`)
	assert.Contains(t, content, "E100")

	// system + user + assistant tool call + tool result + assistant text
	require.Len(t, hrAgent.Params().Messages, 5)
}

func TestTurnUnknownToolEndsTurn(t *testing.T) {
	hrAgent, ms, hrRequests := newTestAgent(t,
		[]scripted{toolCallCompletion("does_not_exist", `{}`)}, `{}`)

	answer := hrAgent.Turn(context.Background(), "Do something odd")

	assert.Contains(t, answer, "does_not_exist")
	assert.Len(t, ms.requests, 1, "no second model round-trip on unknown tool")
	assert.Zero(t, *hrRequests)

	// The dangling tool call is not recorded; the transcript stays usable.
	require.Len(t, hrAgent.Params().Messages, 3)
	assert.Nil(t, hrAgent.Params().Messages[2].OfAssistant.ToolCalls)
}

func TestTurnToolErrorIsRelayedToModel(t *testing.T) {
	hrAgent, ms, hrRequests := newTestAgent(t,
		[]scripted{
			toolCallCompletion("get_monthly_attendance", `{"employee_ids":["E1"],"month_year":"2025-13"}`),
			textCompletion("That month looks invalid; use YYYY-MM."),
		}, `{}`)

	answer := hrAgent.Turn(context.Background(), "Monthly attendance for E1 in 2025-13")

	assert.Equal(t, "That month looks invalid; use YYYY-MM.", answer)
	assert.Zero(t, *hrRequests, "invalid month never reaches the HR API")

	var followUp struct {
		Messages []map[string]any `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(ms.requests[1], &followUp))
	content, _ := followUp.Messages[3]["content"].(string)
	assert.Contains(t, content, "Invalid month_year format")
}

func TestTurnModelFailureLeavesSessionUsable(t *testing.T) {
	hrAgent, _, _ := newTestAgent(t,
		[]scripted{
			{status: 500, body: `{"error":{"message":"boom"}}`},
			textCompletion("Back again."),
		}, `{}`)

	answer := hrAgent.Turn(context.Background(), "Hello?")
	assert.Contains(t, answer, "sorry")
	require.Len(t, hrAgent.Params().Messages, 3)

	answer = hrAgent.Turn(context.Background(), "Still there?")
	assert.Equal(t, "Back again.", answer)
	require.Len(t, hrAgent.Params().Messages, 5)
}

func TestTurnDoesNotChainToolCalls(t *testing.T) {
	hrAgent, ms, hrRequests := newTestAgent(t,
		[]scripted{
			toolCallCompletion("get_all_employees", `{}`),
			toolCallCompletion("get_leave_balance", `{"employee_nos":["E7"]}`),
		},
		`{"data":[{"employee_number":"E7","name":"Jane Doe"}]}`,
	)

	answer := hrAgent.Turn(context.Background(), "What's the leave balance for Jane Doe?")

	assert.Equal(t, 1, *hrRequests, "the second requested tool call is not served")
	assert.Len(t, ms.requests, 2)
	assert.Contains(t, strings.ToLower(answer), "one lookup")
}

func TestNewWithResumedTranscript(t *testing.T) {
	resumed := &openai.ChatCompletionNewParams{Model: "gpt-4o"}
	resumed.Messages = append(resumed.Messages,
		openai.SystemMessage("You are Darwin."),
		openai.UserMessage("hi"),
		openai.AssistantMessage("hello"),
	)

	registry := tooling.NewRegistry(darwinbox.New(&config.Config{Domain: "http://unused", Username: "u", Password: "p"}))
	hrAgent := New(openai.NewClient(option.WithAPIKey("test")), registry, "test-model", "ignored for resumed sessions", resumed, "sess-42")

	assert.Equal(t, "sess-42", hrAgent.ID())
	assert.Equal(t, "gpt-4o", hrAgent.Params().Model)
	require.Len(t, hrAgent.Params().Messages, 3, "no second system message on resume")
	assert.Len(t, hrAgent.Params().Tools, 14)
}

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	day, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return day
}

func TestSystemPromptCarriesConventions(t *testing.T) {
	prompt := SystemPrompt(mustDay(t, "2025-11-06"))

	assert.Contains(t, prompt, "Today is 2025-11-06")
	assert.Contains(t, prompt, "2025-10-27")
	assert.Contains(t, prompt, "2025-11-02")
	assert.Contains(t, prompt, "2025-10-01")
	assert.Contains(t, prompt, "2025-10-31")
	assert.Contains(t, prompt, "get_all_employees")
	assert.Contains(t, prompt, "YYYY-MM-DD")
}

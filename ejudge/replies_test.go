package ejudge_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ejapp/backend/ejudge"
)

func TestReplyEnvelopeRoundtrip(t *testing.T) {
	serverTime := int64(1700000000)
	replyID := int64(9)
	original := ejudge.SubmitRunReply{
		Envelope: ejudge.Envelope{
			OK:         true,
			Action:     ejudge.ActionSubmitRun,
			ServerTime: &serverTime,
			ReplyID:    &replyID,
		},
		Result: &ejudge.SubmitRunResult{RunID: 42},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded ejudge.SubmitRunReply
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestReplyUnknownEnvelopeFieldRejected(t *testing.T) {
	raw := []byte(`{"ok": true, "action": "submit-run", "result": {"run_id": 1}, "bogus": 1}`)

	var decoded ejudge.SubmitRunReply
	err := json.Unmarshal(raw, &decoded)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
}

func TestReplyNullResultDecodesToNil(t *testing.T) {
	raw := []byte(`{"ok": false, "action": "get-user", "result": null,
		"error": {"num": 5, "symbol": "NO_SUCH_USER"}}`)

	var decoded ejudge.GetUserReply
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Nil(t, decoded.Result)
	require.NotNil(t, decoded.Error)
	assert.Equal(t, "NO_SUCH_USER", decoded.Error.Symbol)
	assert.Equal(t, 5, decoded.Error.Num)
	assert.Nil(t, decoded.Error.Message)
}

func TestErrorBlockOmitsAbsentMessage(t *testing.T) {
	data, err := json.Marshal(ejudge.ErrorBlock{Num: -1, Symbol: "unknown"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"num": -1, "symbol": "unknown"}`, string(data))
}

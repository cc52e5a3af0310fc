package ejudge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }
func intp(n int) *int       { return &n }
func boolp(b bool) *bool    { return &b }

func TestEncodeSubmitRunTextSource(t *testing.T) {
	req := SubmitRunRequest{
		ContestID: 7,
		Problem:   intp(5),
		LangID:    strp("py3"),
		TextForm:  strp(`print("hello")`),
		IsVisible: boolp(true),
	}
	require.NoError(t, req.Validate())

	p := encodeSubmitRun(&req)

	assert.Equal(t, `print("hello")`, p.fields["text_form"])
	assert.Empty(t, p.files)
	assert.Equal(t, "7", p.fields["contest_id"])
	assert.Equal(t, "5", p.fields["problem"])
	assert.Equal(t, "py3", p.fields["lang_id"])
	assert.Equal(t, "1", p.fields["is_visible"])
	assert.NotContains(t, p.fields, "action")
}

func TestEncodeSubmitRunBinarySource(t *testing.T) {
	req := SubmitRunRequest{
		ContestID:    2,
		Problem:      intp(3),
		LanguageName: strp("cpp"),
		File:         []byte("int main(){}"),
	}
	require.NoError(t, req.Validate())

	p := encodeSubmitRun(&req)

	require.Contains(t, p.files, "file")
	assert.Equal(t, "solution", p.files["file"].filename)
	assert.Equal(t, []byte("int main(){}"), p.files["file"].content)
	assert.NotContains(t, p.fields, "text_form")
	assert.Equal(t, "cpp", p.fields["language_name"])
}

func TestEncodeBoolFields(t *testing.T) {
	req := SubmitRunRequest{
		ContestID:     1,
		Problem:       intp(1),
		LangID:        strp("py3"),
		TextForm:      strp("pass"),
		IsVisible:     boolp(false),
		RejudgeFlag:   boolp(true),
		SenderSSLFlag: boolp(true),
	}
	p := encodeSubmitRun(&req)

	assert.Equal(t, "0", p.fields["is_visible"])
	assert.Equal(t, "1", p.fields["rejudge_flag"])
	assert.Equal(t, "1", p.fields["sender_ssl_flag"])
}

func TestEncodeAbsentOptionalsSkipped(t *testing.T) {
	req := SubmitRunRequest{
		ContestID: 1,
		Problem:   intp(1),
		LangID:    strp("py3"),
		TextForm:  strp("pass"),
	}
	p := encodeSubmitRun(&req)

	for _, name := range []string{
		"sender_user_login", "sender_user_id", "sender_ip", "variant",
		"eoln_type", "is_visible", "not_ok_is_cf", "rejudge_flag",
		"ext_user_kind", "ext_user", "notify_driver", "notify_kind", "notify_queue",
	} {
		assert.NotContains(t, p.fields, name)
	}
}

func TestEncodeNotifyQueueTrimmed(t *testing.T) {
	req := SubmitRunRequest{
		ContestID: 1,
		Problem:   intp(1),
		LangID:    strp("py3"),
		TextForm:  strp("pass"),
		Notify:    &NotificationTarget{Driver: 1, Kind: NotifyKindU64, Queue: "  subs-queue  "},
	}
	p := encodeSubmitRun(&req)

	assert.Equal(t, "1", p.fields["notify_driver"])
	assert.Equal(t, "u64", p.fields["notify_kind"])
	assert.Equal(t, "subs-queue", p.fields["notify_queue"])
}

func TestEncodeSubmitRunInputCombinations(t *testing.T) {
	base := SubmitRunInputRequest{
		ContestID: 9,
		ProbID:    "A",
		LangID:    "py3",
	}

	req := base
	req.TextForm = strp("src")
	req.TextFormInput = strp("in")
	p := encodeSubmitRunInput(&req)
	assert.Equal(t, "src", p.fields["text_form"])
	assert.Equal(t, "in", p.fields["text_form_input"])
	assert.Empty(t, p.files)

	req = base
	req.File = []byte("src")
	req.FileInput = []byte("in")
	p = encodeSubmitRunInput(&req)
	assert.Equal(t, "solution", p.files["file"].filename)
	assert.Equal(t, "stdin", p.files["file_input"].filename)
	assert.NotContains(t, p.fields, "text_form")
	assert.NotContains(t, p.fields, "text_form_input")

	req = base
	req.File = []byte("src")
	req.TextFormInput = strp("in")
	p = encodeSubmitRunInput(&req)
	assert.Contains(t, p.files, "file")
	assert.Equal(t, "in", p.fields["text_form_input"])

	req = base
	req.TextForm = strp("src")
	req.FileInput = []byte("in")
	p = encodeSubmitRunInput(&req)
	assert.Equal(t, "src", p.fields["text_form"])
	assert.Contains(t, p.files, "file_input")
}

func TestGetUserQueryParamsGlobalAlias(t *testing.T) {
	req := GetUserRequest{ContestID: 4, OtherUserLogin: strp("john"), Global: boolp(true)}
	vals := req.queryParams()

	assert.Equal(t, "4", vals.Get("contest_id"))
	assert.Equal(t, "john", vals.Get("other_user_login"))
	assert.Equal(t, "1", vals.Get("global"))
	assert.False(t, vals.Has("other_user_id"))
}

func TestGetSubmitQueryParams(t *testing.T) {
	req := GetSubmitRequest{ContestID: 1, SubmitID: 555}
	vals := req.queryParams()

	assert.Equal(t, "1", vals.Get("contest_id"))
	assert.Equal(t, "555", vals.Get("submit_id"))
}

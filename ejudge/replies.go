package ejudge

import (
	"bytes"
	"encoding/json"

	"github.com/google/uuid"
)

// ErrorBlock is the standard error payload embedded in ejudge replies.
type ErrorBlock struct {
	Num     int     `json:"num"`
	Symbol  string  `json:"symbol"`
	Message *string `json:"message,omitempty"`
}

// unknownErrorBlock is the sentinel substituted when ejudge reports
// ok:false without an error block. It repairs the reply shape so every
// ReplyError carries a block; the raw envelope stays inspectable in
// case this masks an upstream bug.
func unknownErrorBlock() *ErrorBlock {
	msg := "No error payload provided by ejudge."
	return &ErrorBlock{Num: -1, Symbol: "unknown", Message: &msg}
}

// Envelope is the uniform wrapper all ejudge replies share, minus the
// action-specific result payload.
type Envelope struct {
	OK         bool
	Action     string
	ServerTime *int64
	ReplyID    *int64
	RequestID  *int64
	Error      *ErrorBlock
}

// Reply is the full envelope for one action, with the result typed per
// action. Result is nil on error replies.
type Reply[T any] struct {
	Envelope
	Result *T
}

// Reply envelopes of the four supported actions.
type (
	SubmitRunReply      = Reply[SubmitRunResult]
	SubmitRunInputReply = Reply[SubmitRunInputResult]
	GetSubmitReply      = Reply[SubmitDetails]
	GetUserReply        = Reply[UserProfile]
)

// rawReply mirrors the wire shape of the envelope. Unknown fields are
// rejected during decoding so mis-typed remote fields surface loudly
// instead of being dropped.
type rawReply struct {
	OK         bool            `json:"ok"`
	Action     string          `json:"action"`
	ServerTime *int64          `json:"server_time,omitempty"`
	ReplyID    *int64          `json:"reply_id,omitempty"`
	RequestID  *int64          `json:"request_id,omitempty"`
	Result     json.RawMessage `json:"result,omitempty"`
	Error      *ErrorBlock     `json:"error,omitempty"`
}

func (r Reply[T]) MarshalJSON() ([]byte, error) {
	raw := rawReply{
		OK:         r.OK,
		Action:     r.Action,
		ServerTime: r.ServerTime,
		ReplyID:    r.ReplyID,
		RequestID:  r.RequestID,
		Error:      r.Error,
	}
	if r.Result != nil {
		res, err := json.Marshal(r.Result)
		if err != nil {
			return nil, err
		}
		raw.Result = res
	}
	return json.Marshal(raw)
}

func (r *Reply[T]) UnmarshalJSON(data []byte) error {
	var raw rawReply
	if err := strictUnmarshal(data, &raw); err != nil {
		return err
	}
	r.Envelope = Envelope{
		OK:         raw.OK,
		Action:     raw.Action,
		ServerTime: raw.ServerTime,
		ReplyID:    raw.ReplyID,
		RequestID:  raw.RequestID,
		Error:      raw.Error,
	}
	r.Result = nil
	if len(raw.Result) > 0 && !bytes.Equal(raw.Result, []byte("null")) {
		var res T
		if err := strictUnmarshal(raw.Result, &res); err != nil {
			return err
		}
		r.Result = &res
	}
	return nil
}

func strictUnmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// SubmitRunResult is the successful payload of submit-run.
type SubmitRunResult struct {
	RunID   int        `json:"run_id"`
	RunUUID *uuid.UUID `json:"run_uuid,omitempty"`
}

// SubmitRunInputResult is the successful payload of submit-run-input.
type SubmitRunInputResult struct {
	SubmitID int `json:"submit_id"`
}

// SubmitDetails is the status document returned by get-submit and
// carried in queue notifications.
type SubmitDetails struct {
	SubmitID int `json:"submit_id"`
	UserID   int `json:"user_id"`
	ProbID   int `json:"prob_id"`
	LangID   int `json:"lang_id"`

	ExtUserKind *string           `json:"ext_user_kind,omitempty"`
	ExtUser     *string           `json:"ext_user,omitempty"`
	NotifyDrv   *int              `json:"notify_driver,omitempty"`
	NotifyKind  *NotificationKind `json:"notify_kind,omitempty"`
	NotifyQueue *string           `json:"notify_queue,omitempty"`

	Status    int    `json:"status"`
	StatusStr string `json:"status_str"`

	CompilerOutput    *string `json:"compiler_output,omitempty"`
	TestCheckerOutput *string `json:"test_checker_output,omitempty"`

	TimeMs     *int64 `json:"time,omitempty"`
	RealTimeMs *int64 `json:"real_time,omitempty"`
	ExitCode   *int   `json:"exit_code,omitempty"`
	TermSignal *int   `json:"term_signal,omitempty"`
	MaxMemUsed *int64 `json:"max_memory_used,omitempty"`
	MaxRSS     *int64 `json:"max_rss,omitempty"`

	Input  *string `json:"input,omitempty"`
	Output *string `json:"output,omitempty"`
	Error  *string `json:"error,omitempty"`
}

// UserContestState is a contest membership descriptor inside UserProfile.
type UserContestState struct {
	ContestID      int    `json:"contest_id"`
	CreateTime     *int64 `json:"create_time,omitempty"`
	Status         *int   `json:"status,omitempty"`
	IsBanned       *bool  `json:"is_banned,omitempty"`
	IsDisqualified *bool  `json:"is_disqualified,omitempty"`
	IsIncomplete   *bool  `json:"is_incomplete,omitempty"`
	IsInvisible    *bool  `json:"is_invisible,omitempty"`
	IsLocked       *bool  `json:"is_locked,omitempty"`
	IsPrivileged   *bool  `json:"is_privileged,omitempty"`
	IsRegReadonly  *bool  `json:"is_reg_readonly,omitempty"`
	LastChangeTime *int64 `json:"last_change_time,omitempty"`
	UserID         *int   `json:"user_id,omitempty"`
}

// UserCookie is an active ejudge session cookie of the user.
type UserCookie struct {
	ClientKey *string `json:"client_key,omitempty"`
	ContestID *int    `json:"contest_id,omitempty"`
	Cookie    *string `json:"cookie,omitempty"`
	Expire    *int64  `json:"expire,omitempty"`
	IP        *string `json:"ip,omitempty"`
	IsJob     *bool   `json:"is_job,omitempty"`
	IsWs      *bool   `json:"is_ws,omitempty"`
	LocaleID  *int    `json:"locale_id,omitempty"`
	PrivLevel *int    `json:"priv_level,omitempty"`
	Recovery  *bool   `json:"recovery,omitempty"`
	Role      *int    `json:"role,omitempty"`
	SSL       *bool   `json:"ssl,omitempty"`
	TeamLogin *bool   `json:"team_login,omitempty"`
	UserID    *int    `json:"user_id,omitempty"`
}

// UserInfo is a contest-specific profile fragment.
type UserInfo struct {
	ContestID *int    `json:"contest_id,omitempty"`
	City      *string `json:"city,omitempty"`
	CityEn    *string `json:"city_en,omitempty"`
	Area      *string `json:"area,omitempty"`
	LocaleID  *int    `json:"locale_id,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	School    *string `json:"school,omitempty"`
	Grade     *string `json:"grade,omitempty"`
	UserID    *int    `json:"user_id,omitempty"`
}

// UserProfile is the aggregated user descriptor returned by get-user.
type UserProfile struct {
	UserID    int    `json:"user_id"`
	UserLogin string `json:"user_login"`

	Email        *string `json:"email,omitempty"`
	IsBanned     *bool   `json:"is_banned,omitempty"`
	IsInvisible  *bool   `json:"is_invisible,omitempty"`
	IsLocked     *bool   `json:"is_locked,omitempty"`
	IsPrivileged *bool   `json:"is_privileged,omitempty"`
	NeverClean   *bool   `json:"never_clean,omitempty"`
	PasswdMethod *int    `json:"passwd_method,omitempty"`
	ReadOnly     *bool   `json:"read_only,omitempty"`
	RegTime      *int64  `json:"registration_time,omitempty"`
	ShowEmail    *bool   `json:"show_email,omitempty"`
	ShowLogin    *bool   `json:"show_login,omitempty"`
	SimpleReg    *bool   `json:"simple_registration,omitempty"`

	LastAccessTime      *int64 `json:"last_access_time,omitempty"`
	LastChangeTime      *int64 `json:"last_change_time,omitempty"`
	LastLoginTime       *int64 `json:"last_login_time,omitempty"`
	LastMinorChangeTime *int64 `json:"last_minor_change_time,omitempty"`
	LastPwdChangeTime   *int64 `json:"last_pwdchange_time,omitempty"`

	Contests []UserContestState `json:"contests,omitempty"`
	Cookies  []UserCookie       `json:"cookies,omitempty"`
	Infos    []UserInfo         `json:"infos,omitempty"`
}

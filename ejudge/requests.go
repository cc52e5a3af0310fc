package ejudge

import (
	"net/netip"
	"strings"

	"github.com/google/uuid"
)

// Action names of the remote ejudge operations this client supports.
const (
	ActionSubmitRun      = "submit-run"
	ActionSubmitRunInput = "submit-run-input"
	ActionGetSubmit      = "get-submit"
	ActionGetUser        = "get-user"
)

// NotificationKind is the serialization strategy for the notify queue id.
type NotificationKind string

const (
	NotifyKindStr  NotificationKind = "str"
	NotifyKindU64  NotificationKind = "u64"
	NotifyKindUUID NotificationKind = "uuid"
	NotifyKindULID NotificationKind = "ulid"
)

func (k NotificationKind) known() bool {
	switch k {
	case NotifyKindStr, NotifyKindU64, NotifyKindUUID, NotifyKindULID:
		return true
	}
	return false
}

// NotificationTarget describes the queue ejudge should notify once a
// submit finishes processing. Driver 1 is redis.
type NotificationTarget struct {
	Driver int
	Kind   NotificationKind
	Queue  string
}

func (n NotificationTarget) Validate() error {
	if n.Driver <= 0 {
		return errValidation("notify driver must be a positive identifier")
	}
	if !n.Kind.known() {
		return errValidation("notify kind must be one of str, u64, uuid, ulid")
	}
	if strings.TrimSpace(n.Queue) == "" {
		return errValidation("notification queue identifier cannot be empty")
	}
	return nil
}

// SubmitRunRequest is the form body for the privileged submit-run
// endpoint. Optional fields are pointers; the selector groups (problem,
// language, source payload) each require exactly one member set.
type SubmitRunRequest struct {
	ContestID int

	SenderUserLogin *string
	SenderUserID    *int
	SenderIP        *netip.Addr
	SenderSSLFlag   *bool

	// Problem selectors, exactly one must be set.
	ProblemUUID *uuid.UUID
	ProblemName *string
	Problem     *int

	Variant *int

	// Language selectors, exactly one must be set.
	LanguageName *string
	LangID       *string

	EolnType  *int
	IsVisible *bool

	// Source payload, exactly one must be set.
	File     []byte
	TextForm *string

	NotOkIsCF   *bool
	RejudgeFlag *bool

	ExtUserKind *string
	ExtUser     *string

	Notify *NotificationTarget
}

func (r *SubmitRunRequest) Validate() error {
	if r.ContestID <= 0 {
		return errValidation("contest_id must be positive")
	}
	if countSet(r.ProblemUUID != nil, r.ProblemName != nil, r.Problem != nil) != 1 {
		return errValidation("exactly one of problem_uuid, problem_name or problem must be provided")
	}
	if r.Problem != nil && *r.Problem <= 0 {
		return errValidation("problem must be positive")
	}
	if r.SenderUserID != nil && *r.SenderUserID <= 0 {
		return errValidation("sender_user_id must be positive")
	}
	if countSet(r.LanguageName != nil, r.LangID != nil) != 1 {
		return errValidation("exactly one of language_name or lang_id must be provided")
	}
	if countSet(r.File != nil, r.TextForm != nil) != 1 {
		return errValidation("provide either file bytes or text_form text payload")
	}
	if r.EolnType != nil && *r.EolnType < 0 {
		return errValidation("eoln_type cannot be negative")
	}
	if r.Notify != nil {
		return r.Notify.Validate()
	}
	return nil
}

// SubmitRunInputRequest is the form body for submit-run-input: a run
// against custom stdin. Source and stdin each follow the binary/text
// duality independently.
type SubmitRunInputRequest struct {
	ContestID int

	SenderUserLogin *string
	SenderUserID    *int
	SenderIP        *netip.Addr
	SenderSSLFlag   *bool

	ProbID string
	LangID string

	EolnType *int

	// Source payload, exactly one must be set.
	File     []byte
	TextForm *string

	// Stdin payload, exactly one must be set.
	FileInput     []byte
	TextFormInput *string

	ExtUserKind *string
	ExtUser     *string

	Notify *NotificationTarget
}

func (r *SubmitRunInputRequest) Validate() error {
	if r.ContestID <= 0 {
		return errValidation("contest_id must be positive")
	}
	if r.ProbID == "" {
		return errValidation("prob_id must be provided")
	}
	if r.LangID == "" {
		return errValidation("lang_id must be provided")
	}
	if r.SenderUserID != nil && *r.SenderUserID <= 0 {
		return errValidation("sender_user_id must be positive")
	}
	if countSet(r.File != nil, r.TextForm != nil) != 1 {
		return errValidation("provide either file bytes or text_form text payload for the source code")
	}
	if countSet(r.FileInput != nil, r.TextFormInput != nil) != 1 {
		return errValidation("provide either file_input bytes or text_form_input text payload for stdin")
	}
	if r.EolnType != nil && *r.EolnType < 0 {
		return errValidation("eoln_type cannot be negative")
	}
	if r.Notify != nil {
		return r.Notify.Validate()
	}
	return nil
}

// GetSubmitRequest fetches the status document of one submit.
type GetSubmitRequest struct {
	ContestID int
	SubmitID  int
}

func (r *GetSubmitRequest) Validate() error {
	if r.ContestID <= 0 {
		return errValidation("contest_id must be positive")
	}
	if r.SubmitID <= 0 {
		return errValidation("submit_id must be positive")
	}
	return nil
}

// GetUserRequest fetches a user profile, identified by exactly one of
// the numeric id or the login. Global requests contest-independent data
// and travels on the wire as the "global" parameter.
type GetUserRequest struct {
	ContestID      int
	OtherUserID    *int
	OtherUserLogin *string
	Global         *bool
}

func (r *GetUserRequest) Validate() error {
	if r.ContestID <= 0 {
		return errValidation("contest_id must be positive")
	}
	if countSet(r.OtherUserID != nil, r.OtherUserLogin != nil) != 1 {
		return errValidation("exactly one of other_user_id or other_user_login must be provided")
	}
	if r.OtherUserID != nil && *r.OtherUserID <= 0 {
		return errValidation("other_user_id must be positive")
	}
	return nil
}

func countSet(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}

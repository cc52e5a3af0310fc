package ejudgetest

import "github.com/ejapp/backend/ejudge"

// Canned reply factories. Each builds the smallest valid success
// envelope for one action so tests only spell out what they assert on.

func NewSubmitRunReply(runID int) *ejudge.SubmitRunReply {
	return &ejudge.SubmitRunReply{
		Envelope: ejudge.Envelope{OK: true, Action: ejudge.ActionSubmitRun},
		Result:   &ejudge.SubmitRunResult{RunID: runID},
	}
}

func NewSubmitRunInputReply(submitID int) *ejudge.SubmitRunInputReply {
	return &ejudge.SubmitRunInputReply{
		Envelope: ejudge.Envelope{OK: true, Action: ejudge.ActionSubmitRunInput},
		Result:   &ejudge.SubmitRunInputResult{SubmitID: submitID},
	}
}

func NewSubmitDetails(submitID, status int, statusStr string) ejudge.SubmitDetails {
	exitCode := 0
	termSignal := 0
	return ejudge.SubmitDetails{
		SubmitID:   submitID,
		UserID:     1,
		ProbID:     1,
		LangID:     1,
		Status:     status,
		StatusStr:  statusStr,
		ExitCode:   &exitCode,
		TermSignal: &termSignal,
	}
}

func NewGetSubmitReply(details ejudge.SubmitDetails) *ejudge.GetSubmitReply {
	return &ejudge.GetSubmitReply{
		Envelope: ejudge.Envelope{OK: true, Action: ejudge.ActionGetSubmit},
		Result:   &details,
	}
}

func NewUserProfile(userID int, userLogin string) ejudge.UserProfile {
	return ejudge.UserProfile{UserID: userID, UserLogin: userLogin}
}

func NewGetUserReply(profile ejudge.UserProfile) *ejudge.GetUserReply {
	return &ejudge.GetUserReply{
		Envelope: ejudge.Envelope{OK: true, Action: ejudge.ActionGetUser},
		Result:   &profile,
	}
}

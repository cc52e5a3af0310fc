package ejudge

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/url"
	"strconv"
	"strings"
)

// formPayload is the transport-ready body of a POST action: scalar
// fields plus binary attachments. With no attachments it encodes as
// application/x-www-form-urlencoded, otherwise as multipart/form-data.
type formPayload struct {
	fields map[string]string
	files  map[string]fileAttachment
}

type fileAttachment struct {
	filename string
	content  []byte
}

func newFormPayload() *formPayload {
	return &formPayload{
		fields: map[string]string{},
		files:  map[string]fileAttachment{},
	}
}

func (p *formPayload) set(name, value string)    { p.fields[name] = value }
func (p *formPayload) setInt(name string, v int) { p.fields[name] = strconv.Itoa(v) }

func (p *formPayload) setOptStr(name string, v *string) {
	if v != nil {
		p.fields[name] = *v
	}
}

func (p *formPayload) setOptInt(name string, v *int) {
	if v != nil {
		p.fields[name] = strconv.Itoa(*v)
	}
}

func (p *formPayload) setOptBool(name string, v *bool) {
	if v != nil {
		p.fields[name] = boolStr(*v)
	}
}

func (p *formPayload) attach(name, filename string, content []byte) {
	p.files[name] = fileAttachment{filename: filename, content: content}
}

// boolStr renders booleans the way the ejudge form parser expects.
func boolStr(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// encodeBody assembles the final request body and its content type.
func (p *formPayload) encodeBody() (io.Reader, string, error) {
	if len(p.files) == 0 {
		vals := url.Values{}
		for name, value := range p.fields {
			vals.Set(name, value)
		}
		return strings.NewReader(vals.Encode()), "application/x-www-form-urlencoded", nil
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range p.fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}
	for name, file := range p.files {
		part, err := w.CreateFormFile(name, file.filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(file.content); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

func (p *formPayload) setNotify(n *NotificationTarget) {
	if n == nil {
		return
	}
	p.setInt("notify_driver", n.Driver)
	p.set("notify_kind", string(n.Kind))
	p.set("notify_queue", strings.TrimSpace(n.Queue))
}

// encodeSubmitRun turns a validated submit-run request into its form
// payload. The action never travels in the body; a binary source
// becomes the "file" attachment, a text source the "text_form" field.
func encodeSubmitRun(r *SubmitRunRequest) *formPayload {
	p := newFormPayload()
	p.setInt("contest_id", r.ContestID)
	p.setOptStr("sender_user_login", r.SenderUserLogin)
	p.setOptInt("sender_user_id", r.SenderUserID)
	if r.SenderIP != nil {
		p.set("sender_ip", r.SenderIP.String())
	}
	p.setOptBool("sender_ssl_flag", r.SenderSSLFlag)
	if r.ProblemUUID != nil {
		p.set("problem_uuid", r.ProblemUUID.String())
	}
	p.setOptStr("problem_name", r.ProblemName)
	p.setOptInt("problem", r.Problem)
	p.setOptInt("variant", r.Variant)
	p.setOptStr("language_name", r.LanguageName)
	p.setOptStr("lang_id", r.LangID)
	p.setOptInt("eoln_type", r.EolnType)
	p.setOptBool("is_visible", r.IsVisible)
	if r.File != nil {
		p.attach("file", "solution", r.File)
	} else if r.TextForm != nil {
		p.set("text_form", *r.TextForm)
	}
	p.setOptBool("not_ok_is_cf", r.NotOkIsCF)
	p.setOptBool("rejudge_flag", r.RejudgeFlag)
	p.setOptStr("ext_user_kind", r.ExtUserKind)
	p.setOptStr("ext_user", r.ExtUser)
	p.setNotify(r.Notify)
	return p
}

// encodeSubmitRunInput does the same for submit-run-input, where source
// and stdin each pick the attachment or text-field route independently.
func encodeSubmitRunInput(r *SubmitRunInputRequest) *formPayload {
	p := newFormPayload()
	p.setInt("contest_id", r.ContestID)
	p.setOptStr("sender_user_login", r.SenderUserLogin)
	p.setOptInt("sender_user_id", r.SenderUserID)
	if r.SenderIP != nil {
		p.set("sender_ip", r.SenderIP.String())
	}
	p.setOptBool("sender_ssl_flag", r.SenderSSLFlag)
	p.set("prob_id", r.ProbID)
	p.set("lang_id", r.LangID)
	p.setOptInt("eoln_type", r.EolnType)
	if r.File != nil {
		p.attach("file", "solution", r.File)
	} else if r.TextForm != nil {
		p.set("text_form", *r.TextForm)
	}
	if r.FileInput != nil {
		p.attach("file_input", "stdin", r.FileInput)
	} else if r.TextFormInput != nil {
		p.set("text_form_input", *r.TextFormInput)
	}
	p.setOptStr("ext_user_kind", r.ExtUserKind)
	p.setOptStr("ext_user", r.ExtUser)
	p.setNotify(r.Notify)
	return p
}

// queryParams of the GET actions. Absent optional fields are skipped;
// the "global" flag keeps its wire alias.
func (r *GetSubmitRequest) queryParams() url.Values {
	vals := url.Values{}
	vals.Set("contest_id", strconv.Itoa(r.ContestID))
	vals.Set("submit_id", strconv.Itoa(r.SubmitID))
	return vals
}

func (r *GetUserRequest) queryParams() url.Values {
	vals := url.Values{}
	vals.Set("contest_id", strconv.Itoa(r.ContestID))
	if r.OtherUserID != nil {
		vals.Set("other_user_id", strconv.Itoa(*r.OtherUserID))
	}
	if r.OtherUserLogin != nil {
		vals.Set("other_user_login", *r.OtherUserLogin)
	}
	if r.Global != nil {
		vals.Set("global", boolStr(*r.Global))
	}
	return vals
}

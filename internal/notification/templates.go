package notification

import (
	"bytes"
	"html/template"
)

var (
	requestCreatedTmpl = template.Must(template.New("request_created").Parse(
		`<p>Hello {{.ManagerName}},</p>
<p>{{.EmployeeName}} raised a new {{.RequestType}} request that is waiting for your response.</p>
<p>Request id: {{.RequestID}}</p>`))

	requestRespondedTmpl = template.Must(template.New("request_responded").Parse(
		`<p>Hello {{.EmployeeName}},</p>
<p>Your {{.RequestType}} request is now <strong>{{.Status}}</strong>.</p>
{{if .Reply}}<p>Reply: {{.Reply}}</p>{{end}}
<p>Request id: {{.RequestID}}</p>`))

	welcomeTmpl = template.Must(template.New("employee_welcome").Parse(
		`<p>Welcome {{.EmployeeName}},</p>
<p>Your HRMS account has been created for {{.Email}}. Sign in with the temporary password shared by your administrator and change it on first login.</p>`))
)

type requestMailData struct {
	RequestID    string
	RequestType  string
	EmployeeName string
	ManagerName  string
	Status       string
	Reply        string
}

type welcomeMailData struct {
	EmployeeName string
	Email        string
}

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

const welcomeSubject = "Welcome to Mood Journal"

var welcomeTpl = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family:sans-serif">
    <h2>Welcome, {{.Name}}!</h2>
    <p>Your mood journal is ready. Log your first check-in whenever you like.
    A minute a day is enough to start seeing patterns.</p>
    <p>The Mood Journal team</p>
  </body>
</html>`))

// RenderWelcome renders the welcome email for a job published on registration.
// Data must carry a "Name" entry.
func RenderWelcome(data map[string]any) (subject, text, html string, err error) {
	name, _ := data["Name"].(string)
	if name == "" {
		name = "there"
	}
	var buf bytes.Buffer
	if err := welcomeTpl.Execute(&buf, map[string]string{"Name": name}); err != nil {
		return "", "", "", err
	}
	text = fmt.Sprintf("Welcome, %s! Your mood journal is ready.", name)
	return welcomeSubject, text, buf.String(), nil
}

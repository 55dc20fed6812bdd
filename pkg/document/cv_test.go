package document

import (
	"testing"

	"cvhub-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCV(t *testing.T) {
	content := domain.CVContent{
		Personal: domain.PersonalInfo{
			FullName: "Ana Lopez",
			Headline: "Go developer",
			Email:    "ana@example.com",
			Location: "Madrid",
		},
		Experience: []domain.Experience{
			{Company: "Acme", Position: "Engineer", StartDate: "2020-01", CurrentlyWorking: true},
		},
		Education: []domain.Education{{School: "UPM", Degree: "BSc", Field: "CS"}},
		Skills:    []string{"Go", "SQL"},
	}

	out, err := RenderCV(content)
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, "<title>Ana Lopez - CV</title>")
	assert.Contains(t, html, "ana@example.com | Madrid")
	assert.Contains(t, html, "2020-01 - Present")
	assert.Contains(t, html, "<strong>BSc</strong> in CS")
	assert.Contains(t, html, "Go, SQL")
}

func TestRenderCV_EscapesMarkup(t *testing.T) {
	content := domain.CVContent{
		Personal: domain.PersonalInfo{FullName: "Ana", Summary: "<script>alert(1)</script>"},
	}

	out, err := RenderCV(content)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<script>")
	assert.Contains(t, string(out), "&lt;script&gt;")
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Ana Lopez-CV.pdf", Filename("Ana Lopez"))
	assert.Equal(t, "Ana-CV.pdf", Filename("Ana\"\r\n"))
	assert.Equal(t, "Untitled-CV.pdf", Filename(""))
}

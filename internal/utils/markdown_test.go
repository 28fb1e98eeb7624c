package utils

import (
	"strings"
	"testing"
)

func TestRenderMarkdown(t *testing.T) {
	html := string(RenderMarkdown("Paid **twice**, second charge never refunded."))
	if !strings.Contains(html, "<strong>twice</strong>") {
		t.Errorf("markdown not rendered: %s", html)
	}
}

func TestRenderMarkdownSanitizes(t *testing.T) {
	html := string(RenderMarkdown("evidence <script>alert(1)</script> attached"))
	if strings.Contains(html, "<script>") {
		t.Errorf("script tag survived sanitization: %s", html)
	}
	if !strings.Contains(html, "evidence") {
		t.Errorf("text content lost: %s", html)
	}
}

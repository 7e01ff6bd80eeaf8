package favicon

import "testing"

func TestURL_Hostname(t *testing.T) {
	got := URL("https://sub.example.co.uk/path")
	want := "https://www.google.com/s2/favicons?domain=sub.example.co.uk&sz=32"
	if got != want {
		t.Errorf("URL = %q, want %q", got, want)
	}
}

func TestURL_PortStripped(t *testing.T) {
	got := URL("https://example.com:8443/search")
	want := "https://www.google.com/s2/favicons?domain=example.com&sz=32"
	if got != want {
		t.Errorf("URL = %q, want %q", got, want)
	}
}

func TestURL_ParseFailure(t *testing.T) {
	if got := URL("https://exa mple.com/"); got != "" {
		t.Errorf("unparseable URL should derive no icon, got %q", got)
	}
}

func TestURL_NoHostname(t *testing.T) {
	if got := URL("/relative/path"); got != "" {
		t.Errorf("URL without hostname should derive no icon, got %q", got)
	}
	if got := URL(""); got != "" {
		t.Errorf("empty URL should derive no icon, got %q", got)
	}
}

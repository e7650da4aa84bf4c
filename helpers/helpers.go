package helpers

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var citationRegexp = regexp.MustCompile(`(?i)^(?:RSA\s+)?(\d+(?:-[A-Z]+)?)\s*:\s*(\d+(?:-[A-Z]+)?)$`)

func Base64Encode(content string) string {
	return base64.StdEncoding.EncodeToString([]byte(content))
}

func IsLocalhostURL(endpoint string) bool {
	u, err := url.Parse(endpoint)
	if err != nil {
		return false
	}
	host := u.Hostname()
	return host == "localhost" || host == "127.0.0.1" || host == "::1"
}

// ParseCitation splits "RSA 225-A:24" into chapter "225-A" and section "24".
func ParseCitation(citation string) (string, string, error) {
	m := citationRegexp.FindStringSubmatch(strings.TrimSpace(citation))
	if m == nil {
		return "", "", fmt.Errorf("could not parse citation='%s'", citation)
	}
	return strings.ToUpper(m[1]), strings.ToUpper(m[2]), nil
}

// RSABaseURL drops the TOC page name: ".../rsa/html/nhtoc.htm" -> ".../rsa/html".
func RSABaseURL(tocURL string) string {
	idx := strings.LastIndex(tocURL, "/")
	if idx < 0 {
		return tocURL
	}
	return tocURL[:idx]
}

func SectionURL(baseURL, folder, chapter, section string) string {
	chapter = strings.ToLower(chapter)
	return fmt.Sprintf("%s/%s/%s/%s-%s.htm", baseURL, strings.ToLower(folder), chapter, chapter, strings.ToLower(section))
}

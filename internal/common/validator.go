package common

import (
	"net/url"
	"strings"
)

func IsValidLoginServer(hostname string) bool {

	// hostnames only, no schema or path
	if strings.ContainsAny(hostname, "/\\ ") {
		return false
	}

	_, err := url.Parse(hostname)

	return err == nil
}

func IsValidURL(rawurl string) bool {
	parsed, err := url.ParseRequestURI(rawurl)
	if err != nil {
		return false
	}
	return len(parsed.Scheme) > 0 && len(parsed.Host) > 0
}

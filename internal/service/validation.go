package service

import "strings"

const maxContentLen = 280

// isValidUsername 非空、≤20 字符、仅字母数字与下划线
func isValidUsername(username string) bool {
	if username == "" || len(username) > 20 {
		return false
	}
	for _, c := range username {
		if !isAlphanumeric(c) && c != '_' {
			return false
		}
	}
	return true
}

func isAlphanumeric(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func sanitizeContent(s string) string {
	return strings.TrimSpace(s)
}

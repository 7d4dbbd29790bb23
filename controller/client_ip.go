package controller

import (
	"net"
	"net/http"
	"strings"
)

// clientIP 提取限流使用的客户端 IP。
// 依次尝试 X-Forwarded-For 的第一跳、X-Real-IP，最后退回连接地址；
// 都取不到时归入 "unknown" 桶，让无法识别的来源共享同一份配额。
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}

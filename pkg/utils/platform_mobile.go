//go:build mobile

package utils

// IsMobile 移动端编译时始终返回 true，输入只读取触摸
func IsMobile() bool {
	return true
}

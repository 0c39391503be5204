package util

import "unsafe"

// Bytes2String 零拷贝转换，返回的 string 与 b 共享内存，b 被修改后不能再使用
func Bytes2String(b []byte) string {
	return *(*string)(unsafe.Pointer(&b))
}

func BytesCmp(key1, key2 []byte) bool {
	if len(key1) != len(key2) {
		return false
	}

	for i := 0; i < len(key2); i++ {
		if key1[i] != key2[i] {
			return false
		}
	}
	return true
}

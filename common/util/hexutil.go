// Copyright 2017-2018 The qitmeer developers

package util

func HasHexPrefix(str string) bool {
	return len(str) >= 2 && str[0] == '0' && (str[1] == 'x' || str[1] == 'X')
}

// TrimHexPrefix removes a leading "0x" or "0X" from str, if present.
func TrimHexPrefix(str string) string {
	if HasHexPrefix(str) {
		return str[2:]
	}
	return str
}

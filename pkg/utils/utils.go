package utils

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/params"
	"github.com/holiman/uint256"
	"github.com/rivo/uniseg"
)

// Truncate cuts str to at most num display characters (grapheme clusters).
// Multi-byte sequences are never split.
func Truncate(str string, num int) string {
	if num <= 0 {
		return ""
	}
	if uniseg.GraphemeClusterCount(str) <= num {
		return str
	}
	var b strings.Builder
	g := uniseg.NewGraphemes(str)
	for n := 0; n < num && g.Next(); n++ {
		b.WriteString(g.Str())
	}
	return b.String()
}

// DisplayLen returns the number of display characters in str.
func DisplayLen(str string) int {
	return uniseg.GraphemeClusterCount(str)
}

// WeiToEther converts a wei amount into ether.
func WeiToEther(wei *uint256.Int) *big.Float {
	if wei == nil {
		return new(big.Float)
	}
	f := new(big.Float).SetInt(wei.ToBig())
	return f.Quo(f, new(big.Float).SetInt64(params.Ether))
}

// FormatEther renders a wei amount in ether with the given number of decimals.
func FormatEther(wei *uint256.Int, decimals int) string {
	return FormatBigFloat(WeiToEther(wei), decimals)
}

func AddCommas(s string) string {
	if len(s) == 0 {
		return s
	}
	parts := strings.Split(s, ".")
	integerPart := parts[0]
	sign := ""
	if strings.HasPrefix(integerPart, "-") {
		sign = "-"
		integerPart = integerPart[1:]
	}

	n := len(integerPart)
	if n <= 3 {
		return s
	}

	var result strings.Builder
	result.WriteString(sign)
	remainder := n % 3
	if remainder > 0 {
		result.WriteString(integerPart[:remainder])
		result.WriteString(",")
	}
	for i := remainder; i < n; i += 3 {
		if i > remainder {
			result.WriteString(",")
		}
		result.WriteString(integerPart[i : i+3])
	}

	if len(parts) > 1 {
		result.WriteString(".")
		result.WriteString(parts[1])
	}
	return result.String()
}

func FormatBigFloat(f *big.Float, decimals int) string {
	if f == nil {
		return "0"
	}
	return AddCommas(f.Text('f', decimals))
}

func BigFloatToFloat64(f *big.Float) float64 {
	if f == nil {
		return 0
	}
	val, _ := f.Float64()
	return val
}

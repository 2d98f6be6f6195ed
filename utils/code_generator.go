// file: utils/code_generator.go
package utils

import (
	"fmt"
	"github.com/google/uuid"
	"math/rand"
	"strings"
	"time"
)

const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
const digits = "0123456789"

var seededRand *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

// NewRand 为一次结算创建独立的随机数生成器（测试可传入固定种子版本替代）
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// GenerateGuildCode 生成公会分享码，格式 XXX-0000
func GenerateGuildCode() string {
	var sb strings.Builder
	sb.Grow(8)
	for i := 0; i < 3; i++ {
		sb.WriteByte(letters[seededRand.Intn(len(letters))])
	}
	sb.WriteByte('-')
	for i := 0; i < 4; i++ {
		sb.WriteByte(digits[seededRand.Intn(len(digits))])
	}
	return sb.String()
}

// GenerateOpTag 生成派遣行动编号
func GenerateOpTag() string {
	part := strings.Replace(uuid.New().String(), "-", "", -1)[:12]
	return fmt.Sprintf("OP-%s", strings.ToUpper(part))
}

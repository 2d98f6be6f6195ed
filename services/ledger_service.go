// file: services/ledger_service.go
package services

import (
	"GuildHall/models"
	"errors"
	"gorm.io/gorm"
	"math"
)

// ErrNegativeAmount 账本金额参数必须非负，负数属于调用方错误而非可夹断的边界
var ErrNegativeAmount = errors.New("账本金额不能为负数")

// LedgerResult 一次资金变更的结果。触顶/触底被夹断属于正常结果，不是错误
type LedgerResult struct {
	Funds   float64 `json:"funds"`
	Clamped bool    `json:"clamped"`
}

// Round2 金额保留两位小数（所有资金运算统一走这里，避免浮点尾差渗入库表）
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// AddFunds 入账：超过金库上限时夹断到上限
func AddFunds(tx *gorm.DB, guild *models.Guild, amount float64) (LedgerResult, error) {
	if amount < 0 {
		return LedgerResult{Funds: guild.Funds}, ErrNegativeAmount
	}

	cap := MaxGoldCap(tx, guild)
	newFunds := Round2(guild.Funds + amount)
	clamped := false
	if newFunds > cap {
		newFunds = cap
		clamped = true
	}

	guild.Funds = newFunds
	if err := tx.Model(guild).Update("funds", newFunds).Error; err != nil {
		return LedgerResult{Funds: guild.Funds}, err
	}
	return LedgerResult{Funds: newFunds, Clamped: clamped}, nil
}

// RemoveFunds 出账：透支时夹断到零，从不在此层拒绝扣款
func RemoveFunds(tx *gorm.DB, guild *models.Guild, amount float64) (LedgerResult, error) {
	if amount < 0 {
		return LedgerResult{Funds: guild.Funds}, ErrNegativeAmount
	}

	newFunds := Round2(guild.Funds - amount)
	clamped := false
	if newFunds < 0 {
		newFunds = 0
		clamped = true
	}

	guild.Funds = newFunds
	if err := tx.Model(guild).Update("funds", newFunds).Error; err != nil {
		return LedgerResult{Funds: guild.Funds}, err
	}
	return LedgerResult{Funds: newFunds, Clamped: clamped}, nil
}

// AddExperience 公会经验无上限，只增不减
func AddExperience(tx *gorm.DB, guild *models.Guild, amount int) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	guild.GXP += amount
	return tx.Model(guild).Update("gxp", guild.GXP).Error
}

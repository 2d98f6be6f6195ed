// file: mappers/quest_mapper.go
package mappers

import (
	"GuildHall/dto"
	"GuildHall/models"
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"math/rand"
)

func MapCreateReqToQuest(req dto.CreateQuestReq) models.Quest {
	return models.Quest{
		Title:           req.Title,
		Description:     req.Description,
		Type:            models.QuestTypeExternal,
		Status:          models.QuestStatusOpen,
		Rank:            models.QuestRank(req.Rank),
		DurationDays:    req.DurationDays,
		GoldReward:      req.GoldReward,
		GXPReward:       req.GXPReward,
		OperationalCost: req.OperationalCost,
		GuildID:         req.GuildID,
	}
}

// MapQuestToItemResp 列表项映射，附带封蜡摆放参数
func MapQuestToItemResp(q models.Quest) dto.QuestItemResp {
	names := make([]string, 0, len(q.AssignedMembers))
	for _, m := range q.AssignedMembers {
		names = append(names, m.Name)
	}

	rotation, top, right := sealPlacement(q.ID, q.Title)

	return dto.QuestItemResp{
		ID:              q.ID,
		Title:           q.Title,
		Type:            string(q.Type),
		Status:          string(q.Status),
		Rank:            string(q.Rank),
		DurationDays:    q.DurationDays,
		GoldReward:      q.GoldReward,
		GXPReward:       q.GXPReward,
		OperationalCost: q.OperationalCost,
		SealRotation:    rotation,
		SealTopOffset:   top,
		SealRightOffset: right,
		SealImagePath:   fmt.Sprintf("seals/%s.png", q.Rank),
		AssignedMembers: names,
	}
}

// sealPlacement 由任务 ID+标题推出确定性随机种子，生成封蜡的旋转与偏移。
// 旋转取 [-20, 20] 度，上/右偏移各取 [-10, 10] px。
// 只保证"同一任务永远得到同一摆放"，具体数值纯属装饰
func sealPlacement(id uint32, title string) (rotation, topOffset, rightOffset int) {
	sum := md5.Sum([]byte(fmt.Sprintf("%d-%s", id, title)))
	seed := int64(binary.BigEndian.Uint64(sum[:8]))
	rng := rand.New(rand.NewSource(seed))

	rotation = rng.Intn(41) - 20
	topOffset = rng.Intn(21) - 10
	rightOffset = rng.Intn(21) - 10
	return
}

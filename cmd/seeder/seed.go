package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/Xushengqwer/go-common/core"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Xushengqwer/letter_service/models/dto"
	"github.com/Xushengqwer/letter_service/service"
)

// parentRoles 是造数时轮换使用的家长角色。
var parentRoles = []string{"爸爸", "妈妈", "爷爷", "奶奶", "外公", "外婆"}

// letterOpenings 拼在随机段落前面，让造出来的家书首句像样一点。
var letterOpenings = []string{
	"亲爱的孩子，见字如面。",
	"宝贝，爸爸妈妈有些话想对你说。",
	"孩子，提笔之际思绪万千。",
	"我的孩子，时间过得真快。",
}

// Seed 通过服务层向展示墙填充 numLetters 封家书，并给其中一部分随机点赞。
// 走服务层而不是直接写存储，这样造出来的数据经过了和线上相同的路径。
func Seed(ctx context.Context, wallSvc *service.LetterWallService, logger *core.ZapLogger, numLetters int) {
	logger.Info("开始填充测试数据 (通过服务层)...", zap.Int("数量", numLetters))

	var wg sync.WaitGroup
	concurrencyLimit := 10
	semaphore := make(chan struct{}, concurrencyLimit)

	var mu sync.Mutex
	var letterIDs []string

	for i := 0; i < numLetters; i++ {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(itemIndex int) {
			defer wg.Done()
			defer func() { <-semaphore }()

			opening := letterOpenings[gofakeit.Number(0, len(letterOpenings)-1)]
			shareReq := &dto.ShareLetterRequest{
				Content:     opening + gofakeit.Paragraph(2, 4, 15, "\n\n"),
				ParentRole:  parentRoles[gofakeit.Number(0, len(parentRoles)-1)],
				ChildName:   gofakeit.FirstName(),
				IsAnonymous: gofakeit.Bool(),
			}

			letter, err := wallSvc.ShareLetter(ctx, shareReq)
			if err != nil {
				logger.Error(fmt.Sprintf("分享家书 %d/%d 失败", itemIndex+1, numLetters), zap.Error(err))
				return
			}
			logger.Info(fmt.Sprintf("成功分享家书 %d/%d", itemIndex+1, numLetters),
				zap.String("letter_id", letter.ID))

			mu.Lock()
			letterIDs = append(letterIDs, letter.ID)
			mu.Unlock()
		}(i)
	}
	wg.Wait()

	// 随机点赞，让最热排序有区分度。每封信 0~8 次，会话各不相同，全部生效。
	logger.Info("开始随机点赞...")
	for _, id := range letterIDs {
		likes := gofakeit.Number(0, 8)
		for j := 0; j < likes; j++ {
			if _, err := wallSvc.LikeLetter(ctx, id, uuid.New().String()); err != nil {
				logger.Error("点赞失败", zap.String("letter_id", id), zap.Error(err))
				break
			}
		}
	}

	logger.Info("测试数据填充完毕 (通过服务层)。", zap.Int("letters", len(letterIDs)))
}

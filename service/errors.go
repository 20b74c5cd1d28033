package service

import (
	"fmt"

	"Memora/pkg/log"
	"Memora/pkg/response"

	"go.uber.org/zap"
)

// storageErr 包装存储错误；step 标识中断位置，之前的写入不会回退
func storageErr(op, step string, err error) error {
	log.L.Error("interaction aborted",
		zap.String("op", op),
		zap.String("step", step),
		zap.Error(err),
	)
	return response.Storage(fmt.Errorf("%s: %s: %w", op, step, err))
}

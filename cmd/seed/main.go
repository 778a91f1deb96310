package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/pairduty/roster/backend/internal/config"
	"github.com/pairduty/roster/backend/internal/repository"
	"github.com/pairduty/roster/backend/internal/seed"
	"github.com/pairduty/roster/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	/**********************************************
	 * 创建 logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * 加载配置
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法加载配置文件", "error", err)
		return
	}

	/**********************************************
	 * 连接数据库
	 **********************************************/
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("无法创建数据库连接池", "error", err)
		return
	}
	defer dbpool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("无法连接到数据库", "error", err)
		return
	}

	/**********************************************
	 * 生成并写入演示排班表
	 **********************************************/
	repo := repository.NewRepository(cfg, dbpool)

	if err := repo.EnsureSchema(); err != nil {
		logger.Error("无法初始化数据库表结构", "error", err)
		return
	}

	schedule := seed.GenerateSchedule(cfg)

	// 生成的数据必须通过引用完整性检查，渲染端只对线上坏数据做降级，不给种子数据开口子
	if err := utils.ValidateScheduleReferences(schedule); err != nil {
		logger.Error("生成的排班表未通过校验", "error", err)
		return
	}

	if err := repo.SaveSchedule(schedule); err != nil {
		logger.Error("无法保存排班表", "error", err)
		return
	}

	logger.Info("演示排班表已写入",
		"scheduleID", schedule.ScheduleID,
		"staffs", len(schedule.Staffs),
		"assignments", len(schedule.Assignments),
	)
}

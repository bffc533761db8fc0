package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "sacco-backend/internal/adapter/http"
	appmw "sacco-backend/internal/adapter/middleware"
	"sacco-backend/internal/adapter/repository/mysql"
	"sacco-backend/internal/config"
	"sacco-backend/internal/infrastructure/cache"
	"sacco-backend/internal/infrastructure/db"
	approvaluc "sacco-backend/internal/usecase/approval"
	expuc "sacco-backend/internal/usecase/expenditure"
	invuc "sacco-backend/internal/usecase/investment"
	loanuc "sacco-backend/internal/usecase/loan"
	memberuc "sacco-backend/internal/usecase/member"
	notifyuc "sacco-backend/internal/usecase/notify"
	savinguc "sacco-backend/internal/usecase/saving"
	statsuc "sacco-backend/internal/usecase/stats"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	// repositories + unit of work
	loans := mysql.NewLoanRepository(gdb)
	savings := mysql.NewSavingRepository(gdb)
	expenditures := mysql.NewExpenditureRepository(gdb)
	investments := mysql.NewInvestmentRepository(gdb)
	members := mysql.NewMemberRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	// usecases
	approvals := approvaluc.NewUsecase(tx)
	loanUC := loanuc.NewUsecase(loans)
	savingUC := savinguc.NewUsecase(savings)
	expUC := expuc.NewUsecase(expenditures)
	invUC := invuc.NewUsecase(investments, tx)
	memberUC := memberuc.NewUsecase(members)
	statsUC := statsuc.NewUsecase(members, savings, investments, expenditures)
	notifyStore := notifyuc.NewRedisSessionStore(rdb, time.Duration(cfg.NotifyTTLSecs)*time.Second)
	notifyUC := notifyuc.NewUsecase(loans, savings, expenditures, notifyStore)

	// handlers
	h := httpadp.NewHandler()
	loanH := httpadp.NewLoanHandler(loanUC, approvals)
	savingH := httpadp.NewSavingHandler(savingUC, approvals)
	expH := httpadp.NewExpenditureHandler(expUC, approvals)
	invH := httpadp.NewInvestmentHandler(invUC)
	memberH := httpadp.NewMemberHandler(memberUC)
	statsH := httpadp.NewStatsHandler(statsUC)
	notifyH := httpadp.NewNotifyHandler(notifyUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idemp := appmw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)
	asApprover := appmw.RequireApprover(members)
	asMember := appmw.RequireMember(members)

	e.GET("/health", h.Health)

	e.POST("/members", memberH.CreateMember)
	e.GET("/members/:member_uid", memberH.GetMember)

	e.POST("/loans", loanH.CreateLoan, asMember, idemp)
	e.GET("/loans", loanH.ListLoans)
	e.GET("/loans/:loan_id", loanH.GetLoan)
	e.POST("/loans/:loan_id/approve", loanH.ApproveLoan, asApprover, idemp)

	e.POST("/savings", savingH.CreateSaving, asMember, idemp)
	e.GET("/savings", savingH.ListSavings)
	e.POST("/savings/:saving_id/approve", savingH.ApproveSaving, asApprover, idemp)

	e.POST("/expenditures", expH.CreateExpenditure, asMember, idemp)
	e.GET("/expenditures", expH.ListExpenditures)
	e.POST("/expenditures/:expenditure_id/approve", expH.ApproveExpenditure, asApprover, idemp)

	e.POST("/investments", invH.CreateInvestment, asApprover, idemp)
	e.GET("/investments", invH.ListInvestments)
	e.POST("/investments/:investment_id/resolve", invH.ResolveInvestment, asApprover, idemp)

	e.GET("/statistics", statsH.GetStatistics)
	e.GET("/fund-snapshot", statsH.GetFundSnapshot)
	e.GET("/notifications", notifyH.GetNotifications, asMember)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"investcore-backend/internal/adapter/captcha"
	httpadp "investcore-backend/internal/adapter/http"
	appmw "investcore-backend/internal/adapter/middleware"
	"investcore-backend/internal/adapter/notifier"
	"investcore-backend/internal/adapter/repository/mysql"
	"investcore-backend/internal/config"
	"investcore-backend/internal/infrastructure/cache"
	"investcore-backend/internal/infrastructure/db"
	decisionUC "investcore-backend/internal/usecase/decision"
	loanUC "investcore-backend/internal/usecase/loan"
	referralUC "investcore-backend/internal/usecase/referral"
	walletUC "investcore-backend/internal/usecase/wallet"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	loans := mysql.NewLoanRepository(gdb)
	wallets := mysql.NewWalletRepository(gdb)
	txs := mysql.NewTransactionRepository(gdb)
	rewards := mysql.NewRewardRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	mailer := notifier.NewMailer(cfg.MailerURL)
	bonus := referralUC.NewProcessor(tx)

	loanUsecase := loanUC.NewUsecase(loans, tx)
	decisionUsecase := decisionUC.NewUsecase(tx, mailer, bonus)
	walletUsecase := walletUC.NewUsecase(wallets, txs, tx)

	h := httpadp.NewHandler()
	lh := httpadp.NewLoanHandler(loanUsecase)
	dh := httpadp.NewDecisionHandler(decisionUsecase)
	wh := httpadp.NewWalletHandler(walletUsecase)
	rh := httpadp.NewRewardHandler(rewards)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	// Public mutating routes dedupe on the client request id; the captcha
	// check is a no-op unless enabled in config.
	idemp := appmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)
	var verifier appmw.CaptchaVerifier
	if cfg.CaptchaEnabled {
		verifier = captcha.NewClient(cfg.CaptchaURL)
	}
	guard := appmw.RequireCaptcha(verifier)

	e.GET("/health", h.Health)

	e.POST("/wallets", wh.OpenWallet, idemp)
	e.GET("/wallets/:user_id", wh.GetWallet)
	e.GET("/wallets/:user_id/transactions", wh.ListTransactions)
	e.POST("/wallets/:user_id/deposits", wh.Deposit, idemp, guard)
	e.POST("/wallets/:user_id/withdrawals", wh.RequestWithdrawal, idemp, guard)

	e.POST("/loans", lh.SubmitLoan, idemp, guard)
	e.GET("/loans/:application_id", lh.GetLoan)
	e.GET("/users/:user_id/loans", lh.ListUserLoans)
	e.GET("/users/:user_id/rewards", rh.ListUserRewards)

	admin := e.Group("/admin", appmw.AdminGuard(cfg.AdminDevBypass))
	admin.GET("/loans", lh.ListAllLoans)
	admin.POST("/loans/:application_id/approve", dh.ApproveLoan)
	admin.POST("/loans/:application_id/reject", dh.RejectLoan)
	admin.POST("/deposits/:tx_id/confirm", wh.ConfirmDeposit)
	admin.POST("/withdrawals/:tx_id/review", wh.ReviewWithdrawal)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

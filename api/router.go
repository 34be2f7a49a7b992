// Package api contains all endpoints available
package api

import (
	"bitwise74/budget-api/middleware"
	"bitwise74/budget-api/security"
	"bitwise74/budget-api/service"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

type API struct {
	DB     *gorm.DB
	Router *gin.Engine
	Argon  *security.ArgonHash
	Mailer service.Mailer
}

func NewRouter(d *gorm.DB, mailer service.Mailer) (*API, error) {
	a := &API{
		DB:     d,
		Argon:  security.New(),
		Mailer: mailer,
	}

	makeLogger()

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     []string{viper.GetString("host.frontend_origin")},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v, ok := c.Get("userID"); ok {
					fields = append(fields, zap.Any("userID", v))
				}

				return fields
			},
		}),
		middleware.BodySizeLimiter(1<<20),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	// Liveness probe for the frontend
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Ok")
	})

	jwt := middleware.NewJWTMiddleware(d)
	budgetOwns := middleware.NewBudgetOwnershipMiddleware(d)
	expenseOwns := middleware.NewExpenseOwnershipMiddleware(d)

	main := router.Group("/api")
	{
		// HEAD /api/heartbeat 		-> Used to check if the server is alive
		main.HEAD("/heartbeat", a.Heartbeat)
	}

	// The whole auth surface sits behind the rate limiter. The reset
	// tokens are 6 digits so unthrottled guessing is not an option
	auth := main.Group("/auth", middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RequestsPerSecond: viper.GetInt("ratelimit.rps"),
		Burst:             viper.GetInt("ratelimit.burst"),
	}))
	{
		// POST /api/auth/create-account	-> Registers a new user and mails a confirmation token
		auth.POST("/create-account", a.AuthRegister)

		// POST /api/auth/confirm-account	-> Redeems a confirmation token
		auth.POST("/confirm-account", a.AuthConfirm)

		// POST /api/auth/login 		-> Logs in a user and returns a JWT token
		auth.POST("/login", a.AuthLogin)

		// POST /api/auth/forgot-password	-> Mails a password reset token
		auth.POST("/forgot-password", a.AuthForgotPassword)

		// POST /api/auth/validate-token	-> Checks a reset token without consuming it
		auth.POST("/validate-token", a.AuthValidateToken)

		// POST /api/auth/reset-password/:token	-> Sets a new password using a reset token
		auth.POST("/reset-password/:token", a.AuthResetPassword)

		// GET /api/auth/user			-> Returns the authenticated user
		auth.GET("/user", jwt, a.AuthUser)

		// POST /api/auth/reset-auth-password	-> Changes the password of a logged in user
		auth.POST("/reset-auth-password", jwt, a.AuthUpdatePassword)

		// POST /api/auth/check-password	-> Verifies the password of a logged in user
		auth.POST("/check-password", jwt, a.AuthCheckPassword)
	}

	budget := main.Group("/budget", jwt)
	{
		// GET /api/budget			-> Lists the user's budgets
		budget.GET("", a.BudgetList)

		// POST /api/budget			-> Creates a new budget owned by the user
		budget.POST("", a.BudgetCreate)

		// GET /api/budget/:budgetId		-> Returns a budget with its expenses
		budget.GET("/:budgetId", budgetOwns, a.BudgetFetch)

		// PUT /api/budget/:budgetId		-> Updates a budget
		budget.PUT("/:budgetId", budgetOwns, a.BudgetUpdate)

		// DELETE /api/budget/:budgetId		-> Deletes a budget and its expenses
		budget.DELETE("/:budgetId", budgetOwns, a.BudgetDelete)
	}

	expenses := budget.Group("/:budgetId/expenses", budgetOwns)
	{
		// POST /api/budget/:budgetId/expenses	-> Adds an expense to a budget
		expenses.POST("", a.ExpenseCreate)

		// GET .../expenses/:expenseId		-> Returns a single expense
		expenses.GET("/:expenseId", expenseOwns, a.ExpenseFetch)

		// PUT .../expenses/:expenseId		-> Updates an expense
		expenses.PUT("/:expenseId", expenseOwns, a.ExpenseUpdate)

		// DELETE .../expenses/:expenseId	-> Deletes an expense
		expenses.DELETE("/:expenseId", expenseOwns, a.ExpenseDelete)
	}

	return a, nil
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

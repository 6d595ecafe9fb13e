package http

import "github.com/labstack/echo/v4"

type Router struct {
	Health     *Handler
	Accounts   *AccountHandler
	Loans      *LoanHandler
	Prime      *PrimeHandler
	Statistics *StatisticsHandler
}

// Register mounts every route on e. Mutating routes get mw.
func (r Router) Register(e *echo.Echo, mw ...echo.MiddlewareFunc) {
	e.GET("/health", r.Health.Health)

	acc := e.Group("/api/BankAccount")
	acc.GET("", r.Accounts.List)
	acc.GET("/holders", r.Accounts.Holders)
	acc.GET("/search", r.Accounts.Search)
	acc.GET("/:id", r.Accounts.Get)
	acc.POST("", r.Accounts.Create, mw...)
	acc.PUT("/:id", r.Accounts.Update, mw...)
	acc.DELETE("/:id", r.Accounts.Delete, mw...)
	acc.POST("/:id/deposit", r.Accounts.Deposit, mw...)
	acc.POST("/:id/withdraw", r.Accounts.Withdraw, mw...)
	acc.POST("/transfer", r.Accounts.Transfer, mw...)

	ln := e.Group("/api/Loan")
	ln.GET("", r.Loans.List)
	ln.GET("/active", r.Loans.Active)
	ln.GET("/search", r.Loans.Search)
	ln.GET("/stats", r.Loans.Stats)
	ln.GET("/config", r.Loans.GetConfig)
	ln.PUT("/config", r.Loans.UpdateConfig, mw...)
	ln.GET("/:id", r.Loans.Get)
	ln.GET("/:id/summary", r.Loans.Summary)
	ln.GET("/:id/payments", r.Loans.Payments)
	ln.POST("", r.Loans.Create, mw...)
	ln.POST("/:id/payment", r.Loans.MakePayment, mw...)

	e.GET("/api/prime/:number", r.Prime.Check)

	st := e.Group("/api/Statistics")
	st.GET("", r.Statistics.Overview)
	st.GET("/summary", r.Statistics.Summary)
	st.GET("/distribution", r.Statistics.Distribution)
	st.GET("/top-holders", r.Statistics.TopHolders)
}

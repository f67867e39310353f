package handlers

import (
	accountRepoPkg "lawroute/database/repository/account"
)

// HandlerBundle groups all endpoint handlers plus the repositories the
// route middleware needs.
type HandlerBundle struct {
	AccountRepo accountRepoPkg.AccountRepository

	Auth     *AuthHandler
	Issues   *IssueHandler
	Requests *RequestHandler
	Profiles *ProfileHandler
	Articles *ArticleHandler
}

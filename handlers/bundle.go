package handlers

import (
	userRepoPkg "akplaw/database/repository/user"
)

// HandlerBundle groups all endpoint handlers into one struct so route
// registration takes a single dependency.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	Content     *ContentHandler
	User        *UserHandler
	Admin       *AdminHandler
	Inquiry     *InquiryHandler
	Recruitment *RecruitmentHandler
	Billing     *BillingHandler
	Storage     *StorageHandler
	Mail        *MailHandler
}

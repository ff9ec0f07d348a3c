package constants

// Order lifecycle statuses. "served" is kept as an accepted terminal status
// alongside "completed"; both count toward sales.
const (
	ORDER_PENDING    = "pending"
	ORDER_INPROGRESS = "in-progress"
	ORDER_COMPLETED  = "completed"
	ORDER_SERVED     = "served"
)

var OrderStatuses = []string{ORDER_PENDING, ORDER_INPROGRESS, ORDER_COMPLETED, ORDER_SERVED}

// Statuses that close an order and contribute to total sales.
var SalesStatuses = []string{ORDER_COMPLETED, ORDER_SERVED}

// Table statuses.
const (
	TABLE_AVAILABLE      = "available"
	TABLE_OCCUPIED       = "occupied"
	TABLE_RESERVED       = "reserved"
	TABLE_OUT_OF_SERVICE = "out-of-service"
)

var TableStatuses = []string{TABLE_AVAILABLE, TABLE_OCCUPIED, TABLE_RESERVED, TABLE_OUT_OF_SERVICE}

const (
	ROLE_ADMIN   = "ADMIN"
	ROLE_MANAGER = "MANAGER"
)

// Realtime event names, fixed by the live-view clients.
const (
	EVENT_NEW_ORDER        = "new_order"
	EVENT_ORDER_UPDATED    = "order_updated"
	EVENT_DASHBOARD_UPDATE = "dashboard-update"
)

// Stable error codes returned in the "message" field of error responses.
const (
	ERROR_INTERNAL_ERROR     = "INTERNAL_ERROR"
	ERROR_VALIDATION         = "VALIDATION_ERROR"
	ERROR_NOT_FOUND          = "NOT_FOUND"
	ERROR_TRANSACTION_FAILED = "TRANSACTION_FAILED"

	MISSING_LOGIN_INPUT = "MISSING_LOGIN_INPUT"
	INVALID_CREDENTIALS = "INVALID_CREDENTIALS"

	ORDER_NOT_FOUND      = "ORDER_NOT_FOUND"
	TABLE_NOT_FOUND      = "TABLE_NOT_FOUND"
	MENU_ITEM_NOT_FOUND  = "MENU_ITEM_NOT_FOUND"
	INVALID_ORDER_STATUS = "INVALID_ORDER_STATUS"
	INVALID_TABLE_STATUS = "INVALID_TABLE_STATUS"
	TABLE_IN_USE         = "TABLE_IN_USE"
	MENU_ITEM_IN_USE     = "MENU_ITEM_IN_USE"

	DATA_INPUT_IS_NOT_NUMBER = "DATA_INPUT_IS_NOT_NUMBER"
)

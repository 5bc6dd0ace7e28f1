// Package servers provides primitives to interact with the configurator HTTP API:
// request and response types, the echo server interface and route registration.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	AdminAuthScopes = "adminAuth.Scopes"
)

// Defines values for DraftActionType.
const (
	BackToConfiguring   DraftActionType = "back_to_configuring"
	BackToContact       DraftActionType = "back_to_contact"
	ChangePlan          DraftActionType = "change_plan"
	ChoosePlan          DraftActionType = "choose_plan"
	ClearPet            DraftActionType = "clear_pet"
	ProceedToContact    DraftActionType = "proceed_to_contact"
	ResetFigure         DraftActionType = "reset_figure"
	SetAttribute        DraftActionType = "set_attribute"
	SetBackground       DraftActionType = "set_background"
	SetCustomBackground DraftActionType = "set_custom_background"
	SetPet              DraftActionType = "set_pet"
	SetRegion           DraftActionType = "set_region"
	SetSex              DraftActionType = "set_sex"
	SubmitContact       DraftActionType = "submit_contact"
	ToggleAccessory     DraftActionType = "toggle_accessory"
	UpdateContact       DraftActionType = "update_contact"
)

// Defines values for DraftStep.
const (
	DraftStepConfirmed     DraftStep = "confirmed"
	DraftStepConfiguring   DraftStep = "configuring"
	DraftStepContactInfo   DraftStep = "contact_info"
	DraftStepPlanSelection DraftStep = "plan_selection"
	DraftStepSummary       DraftStep = "summary"
)

// Defines values for FigureCategory.
const (
	Body FigureCategory = "body"
	Face FigureCategory = "face"
	Hair FigureCategory = "hair"
	Legs FigureCategory = "legs"
)

// Defines values for FigureSex.
const (
	Female FigureSex = "female"
	Male   FigureSex = "male"
)

// Defines values for OrderStatus.
const (
	Cancelled  OrderStatus = "cancelled"
	Completed  OrderStatus = "completed"
	Pending    OrderStatus = "pending"
	Processing OrderStatus = "processing"
)

// ConfirmedDraft defines model for ConfirmedDraft.
type ConfirmedDraft struct {
	Draft Draft `json:"draft"`
	Order Order `json:"order"`
}

// ContactForm defines model for ContactForm.
type ContactForm struct {
	Address *string `json:"address,omitempty"`
	Comuna  *string `json:"comuna,omitempty"`
	Email   *string `json:"email,omitempty"`
	Name    *string `json:"name,omitempty"`
	Note    *string `json:"note,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Region  *string `json:"region,omitempty"`
	Rut     *string `json:"rut,omitempty"`
}

// CustomerInfo defines model for CustomerInfo.
type CustomerInfo struct {
	Address *string `json:"address,omitempty"`
	Comuna  string  `json:"comuna"`
	Email   string  `json:"email"`
	Name    string  `json:"name"`
	Note    *string `json:"note,omitempty"`
	Phone   string  `json:"phone"`
	Region  string  `json:"region"`
	Rut     string  `json:"rut"`
}

// Draft defines model for Draft.
type Draft struct {
	BackgroundId          *int64             `json:"backgroundId,omitempty"`
	CompletedFigures      int                `json:"completedFigures"`
	Contact               ContactForm        `json:"contact"`
	ContactConfirmed      bool               `json:"contactConfirmed"`
	CustomBackground      *string            `json:"customBackground,omitempty"`
	ExtraAccessoriesCount int                `json:"extraAccessoriesCount"`
	Figures               []DraftFigure      `json:"figures"`
	Id                    openapi_types.UUID `json:"id"`
	LastError             *string            `json:"lastError,omitempty"`
	OrderId               *int64             `json:"orderId,omitempty"`
	PetId                 *int64             `json:"petId,omitempty"`
	Plan                  *Plan              `json:"plan,omitempty"`
	RequiredFigures       int                `json:"requiredFigures"`
	Step                  DraftStep          `json:"step"`
	Submitting            bool               `json:"submitting"`
	TotalPrice            int64              `json:"totalPrice"`
}

// DraftAction defines model for DraftAction.
type DraftAction struct {
	Category *FigureCategory `json:"category,omitempty"`
	Contact  *ContactForm    `json:"contact,omitempty"`
	Figure   *int            `json:"figure,omitempty"`
	Item     *int64          `json:"item,omitempty"`
	Plan     *Plan           `json:"plan,omitempty"`
	Ref      *string         `json:"ref,omitempty"`
	Region   *string         `json:"region,omitempty"`
	Sex      *FigureSex      `json:"sex,omitempty"`
	Type     DraftActionType `json:"type"`
}

// DraftActionType defines model for DraftActionType.
type DraftActionType string

// DraftFigure defines model for DraftFigure.
type DraftFigure struct {
	Accs         []int64    `json:"accs"`
	Body         *int64     `json:"body,omitempty"`
	Complete     bool       `json:"complete"`
	Face         *int64     `json:"face,omitempty"`
	FigureNumber int        `json:"figureNumber"`
	Hair         *int64     `json:"hair,omitempty"`
	Legs         *int64     `json:"legs,omitempty"`
	Sex          *FigureSex `json:"sex,omitempty"`
}

// DraftStep defines model for DraftStep.
type DraftStep string

// Error defines model for Error.
type Error struct {
	Code    int                `json:"code"`
	Fields  *map[string]string `json:"fields,omitempty"`
	Message string             `json:"message"`
}

// FigureCategory defines model for FigureCategory.
type FigureCategory string

// FigureSelections defines model for FigureSelections.
type FigureSelections struct {
	Fig1 *FigureSelection `json:"fig1,omitempty"`
	Fig2 *FigureSelection `json:"fig2,omitempty"`
	Fig3 *FigureSelection `json:"fig3,omitempty"`
	Fig4 *FigureSelection `json:"fig4,omitempty"`
}

// FigureSelection defines model for FigureSelection.
type FigureSelection struct {
	Accs []int64    `json:"accs"`
	Body *int64     `json:"body"`
	Face *int64     `json:"face"`
	Hair *int64     `json:"hair"`
	Legs *int64     `json:"legs"`
	Sex  *FigureSex `json:"sex,omitempty"`
}

// FigureSex defines model for FigureSex.
type FigureSex string

// ItemUsage defines model for ItemUsage.
type ItemUsage struct {
	Count  int64 `json:"count"`
	ItemId int64 `json:"itemId"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	BackgroundId          *int64           `json:"backgroundId,omitempty"`
	CustomBackground      *string          `json:"customBackground,omitempty"`
	CustomerInfo          CustomerInfo     `json:"customerInfo"`
	ExtraAccessoriesCount int              `json:"extraAccessoriesCount"`
	PetId                 *int64           `json:"petId,omitempty"`
	Plan                  Plan             `json:"plan"`
	Selections            FigureSelections `json:"selections"`
	TotalPrice            int64            `json:"totalPrice"`
}

// Order defines model for Order.
type Order struct {
	BackgroundId          *int64        `json:"backgroundId,omitempty"`
	CreatedAt             time.Time     `json:"createdAt"`
	CustomBackground      *string       `json:"customBackground,omitempty"`
	Customer              CustomerInfo  `json:"customer"`
	ExtraAccessoriesCount int           `json:"extraAccessoriesCount"`
	Figures               []OrderFigure `json:"figures"`
	Id                    int64         `json:"id"`
	PetId                 *int64        `json:"petId,omitempty"`
	PlanId                string        `json:"planId"`
	PlanName              string        `json:"planName"`
	Status                OrderStatus   `json:"status"`
	TotalPrice            int64         `json:"totalPrice"`
}

// OrderCreated defines model for OrderCreated.
type OrderCreated struct {
	Id      int64 `json:"id"`
	Order   Order `json:"order"`
	Success bool  `json:"success"`
}

// OrderFigure defines model for OrderFigure.
type OrderFigure struct {
	Accessories  []int64   `json:"accessories"`
	Body         int64     `json:"body"`
	Face         int64     `json:"face"`
	FigureNumber int       `json:"figureNumber"`
	Hair         int64     `json:"hair"`
	Legs         int64     `json:"legs"`
	Sex          FigureSex `json:"sex"`
}

// OrderStats defines model for OrderStats.
type OrderStats struct {
	CurrentMonthRevenue  int64            `json:"currentMonthRevenue"`
	LastMonthRevenue     int64            `json:"lastMonthRevenue"`
	OrdersByStatus       map[string]int64 `json:"ordersByStatus"`
	PopularPlan          *PlanPopularity  `json:"popularPlan,omitempty"`
	RecentOrders         []RecentOrder    `json:"recentOrders"`
	RevenueChangePercent float64          `json:"revenueChangePercent"`
	TopItems             []ItemUsage      `json:"topItems"`
	TotalFigures         int64            `json:"totalFigures"`
	TotalOrders          int64            `json:"totalOrders"`
	TotalRevenue         int64            `json:"totalRevenue"`
}

// OrderStatus defines model for OrderStatus.
type OrderStatus string

// OrderStatusUpdate defines model for OrderStatusUpdate.
type OrderStatusUpdate struct {
	Status OrderStatus `json:"status"`
}

// Plan defines model for Plan.
type Plan struct {
	AccExtraCost     int64  `json:"accExtraCost"`
	AllowsExtra      *bool  `json:"allowsExtra,omitempty"`
	Id               string `json:"id"`
	MaxAccsPerFigure int    `json:"maxAccsPerFigure"`
	MaxFigures       int    `json:"maxFigures"`
	Name             string `json:"name"`
	Price            int64  `json:"price"`
}

// PlanPopularity defines model for PlanPopularity.
type PlanPopularity struct {
	Name   string `json:"name"`
	Orders int64  `json:"orders"`
}

// RecentOrder defines model for RecentOrder.
type RecentOrder struct {
	CreatedAt    time.Time   `json:"createdAt"`
	CustomerName string      `json:"customerName"`
	Id           int64       `json:"id"`
	PlanName     string      `json:"planName"`
	Status       OrderStatus `json:"status"`
	TotalPrice   int64       `json:"totalPrice"`
}

// DraftId defines model for DraftId.
type DraftId = openapi_types.UUID

// OrderId defines model for OrderId.
type OrderId = int64

// CreateOrderParams defines parameters for CreateOrder.
type CreateOrderParams struct {
	IdempotencyKey *openapi_types.UUID `json:"Idempotency-Key,omitempty"`
}

// ApplyDraftActionJSONRequestBody defines body for ApplyDraftAction for application/json ContentType.
type ApplyDraftActionJSONRequestBody = DraftAction

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// UpdateOrderStatusJSONRequestBody defines body for UpdateOrderStatus for application/json ContentType.
type UpdateOrderStatusJSONRequestBody = OrderStatusUpdate

package handler

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/RoyceAzure/lab/shopcenter/internal/util"
	er "github.com/RoyceAzure/lab/shopcenter/internal/util/rj_error"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templateFS embed.FS

var adminTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

var orderStatuses = []model.OrderStatus{
	model.OrderStatusPending,
	model.OrderStatusCompleted,
	model.OrderStatusCanceled,
}

// 後台頁面用的訂單資料, 金額與時間先轉成字串
type adminOrderView struct {
	ID         int64
	TotalPrice string
	Status     model.OrderStatus
	UserID     int64
	CreatedAt  string
}

func newAdminOrderView(o *model.OrderModel) adminOrderView {
	return adminOrderView{
		ID:         o.ID,
		TotalPrice: o.TotalPrice.StringFixed(2),
		Status:     o.Status,
		UserID:     o.UserID,
		CreatedAt:  o.CreatedAt.Local().Format(constants.ReportTimeLayout),
	}
}

type AdminHandler struct {
	adminService service.IAdminService
	cookieName   string
}

func NewAdminHandler(adminService service.IAdminService, cookieName string) *AdminHandler {
	if adminService == nil {
		panic("adminService cannot be nil")
	}
	return &AdminHandler{
		adminService: adminService,
		cookieName:   cookieName,
	}
}

func (h *AdminHandler) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := adminTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("template", name).Msg("render admin page failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// renderError 後台頁面的錯誤以純文字回應
func (h *AdminHandler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	anaErr := er.As(err)
	status := anaErr.HTTPStatus()
	msg := anaErr.Error()
	if status >= http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("admin request failed")
		msg = http.StatusText(status)
	}
	http.Error(w, msg, status)
}

func (h *AdminHandler) Index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, constants.AdminOrdersPath, http.StatusSeeOther)
}

func (h *AdminHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "login.html", map[string]string{})
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, er.ErrStrMap[er.BadRequestCode], http.StatusBadRequest)
		return
	}
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")

	value, session, err := h.adminService.Login(r.Context(), email, password)
	if err != nil {
		if errors.Is(err, er.UnauthenticatedError) {
			h.render(w, r, http.StatusUnauthorized, "login.html", map[string]string{
				"Email": email,
				"Error": err.Error(),
			})
			return
		}
		h.renderError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    value,
		Path:     "/admin",
		Expires:  session.ExpiresAt,
		MaxAge:   int(time.Until(session.ExpiresAt).Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, constants.AdminOrdersPath, http.StatusSeeOther)
}

func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/admin",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, constants.AdminLoginPath, http.StatusSeeOther)
}

func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.adminService.ListOrders(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	views := make([]adminOrderView, 0, len(orders))
	for i := range orders {
		views = append(views, newAdminOrderView(&orders[i]))
	}

	var adminEmail string
	if s := util.GetAdminSessionFromContext(r.Context()); s != nil {
		adminEmail = s.Email
	}
	h.render(w, r, http.StatusOK, "orders.html", map[string]any{
		"AdminEmail": adminEmail,
		"Orders":     views,
	})
}

// 新增表單回填用, 保留使用者輸入的原字串
type adminOrderForm struct {
	TotalPrice string
	Status     string
	UserID     string
}

func (h *AdminHandler) renderNew(w http.ResponseWriter, r *http.Request, status int, form adminOrderForm, errMsg string) {
	h.render(w, r, status, "order_new.html", map[string]any{
		"Form":     form,
		"Statuses": orderStatuses,
		"Error":    errMsg,
	})
}

func (h *AdminHandler) NewOrderPage(w http.ResponseWriter, r *http.Request) {
	h.renderNew(w, r, http.StatusOK, adminOrderForm{Status: string(model.OrderStatusPending)}, "")
}

func (h *AdminHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, er.ErrStrMap[er.BadRequestCode], http.StatusBadRequest)
		return
	}
	form := adminOrderForm{
		TotalPrice: strings.TrimSpace(r.PostFormValue("total_price")),
		Status:     strings.TrimSpace(r.PostFormValue("status")),
		UserID:     strings.TrimSpace(r.PostFormValue("user_id")),
	}

	arg, err := parseCreateOrderForm(form)
	if err == nil {
		_, err = h.adminService.CreateOrder(r.Context(), arg)
	}
	if err != nil {
		if errors.Is(err, er.ValidationError) {
			h.renderNew(w, r, http.StatusBadRequest, form, err.Error())
			return
		}
		h.renderError(w, r, err)
		return
	}

	http.Redirect(w, r, constants.AdminOrdersPath, http.StatusSeeOther)
}

func parseCreateOrderForm(form adminOrderForm) (model.CreateOrderModel, error) {
	var arg model.CreateOrderModel

	if form.TotalPrice == "" {
		return arg, er.New(er.ValidationCode, "total price is required")
	}
	price, err := decimal.NewFromString(form.TotalPrice)
	if err != nil {
		return arg, er.New(er.ValidationCode, "total price must be a number")
	}
	userID, err := strconv.ParseInt(form.UserID, 10, 64)
	if err != nil {
		return arg, er.New(er.ValidationCode, "user id must be a number")
	}

	arg.TotalPrice = price
	arg.Status = model.OrderStatus(form.Status)
	arg.UserID = userID
	return arg, nil
}

func (h *AdminHandler) EditOrderPage(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	order, err := h.adminService.GetOrder(r.Context(), id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.renderEdit(w, r, http.StatusOK, order, "")
}

func (h *AdminHandler) renderEdit(w http.ResponseWriter, r *http.Request, status int, order *model.OrderModel, errMsg string) {
	h.render(w, r, status, "order_edit.html", map[string]any{
		"Order":    newAdminOrderView(order),
		"Statuses": orderStatuses,
		"Error":    errMsg,
	})
}

func (h *AdminHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, er.ErrStrMap[er.BadRequestCode], http.StatusBadRequest)
		return
	}

	arg, err := parseUpdateOrderForm(r)
	if err == nil {
		_, err = h.adminService.UpdateOrder(r.Context(), id, arg)
	}
	if err != nil {
		if !errors.Is(err, er.ValidationError) {
			h.renderError(w, r, err)
			return
		}
		// 驗證失敗, 帶原始資料重新顯示表單
		order, getErr := h.adminService.GetOrder(r.Context(), id)
		if getErr != nil {
			h.renderError(w, r, getErr)
			return
		}
		h.renderEdit(w, r, http.StatusBadRequest, order, err.Error())
		return
	}

	http.Redirect(w, r, constants.AdminOrdersPath, http.StatusSeeOther)
}

// 空白欄位視為不修改
func parseUpdateOrderForm(r *http.Request) (model.UpdateOrderModel, error) {
	var arg model.UpdateOrderModel

	if raw := strings.TrimSpace(r.PostFormValue("total_price")); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return arg, er.New(er.ValidationCode, "total price must be a number")
		}
		arg.TotalPrice = &price
	}
	if raw := strings.TrimSpace(r.PostFormValue("status")); raw != "" {
		status := model.OrderStatus(raw)
		arg.Status = &status
	}
	return arg, nil
}

func (h *AdminHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	if err := h.adminService.DeleteOrder(r.Context(), id); err != nil {
		h.renderError(w, r, err)
		return
	}
	http.Redirect(w, r, constants.AdminOrdersPath, http.StatusSeeOther)
}

// ExportReport 先寫入 buffer, 產生失敗時才能回 500
func (h *AdminHandler) ExportReport(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.adminService.ExportOrderReport(r.Context(), &buf); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("generate order report failed")
		http.Error(w, "Error generating report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", constants.XlsxContentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+constants.ReportFileName)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

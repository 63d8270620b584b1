package checkout

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/easoftwareGit/e-commerce/dberr"
	"github.com/easoftwareGit/e-commerce/middleware"
	"github.com/easoftwareGit/e-commerce/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

// seedCart creates a user, three products at 9.99/19.99/49.99 and a cart
// holding five of each.
func seedCart(t *testing.T, db *gorm.DB) (models.Cart, []models.Product) {
	t.Helper()

	user := models.User{Email: "shopper@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	products := []models.Product{
		{Name: "Widget", ModelNumber: "W-100", Price: 9.99},
		{Name: "Gadget", ModelNumber: "G-200", Price: 19.99},
		{Name: "Gizmo", ModelNumber: "Z-300", Price: 49.99},
	}
	for i := range products {
		require.NoError(t, db.Create(&products[i]).Error)
	}

	created := time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC)
	cart := models.Cart{Created: created, Modified: created, UserID: user.ID}
	require.NoError(t, db.Create(&cart).Error)

	for i := range products {
		item := models.CartItem{CartID: cart.ID, ProductID: products[i].ID, Quantity: 5}
		require.NoError(t, db.Create(&item).Error)
	}
	return cart, products
}

func TestRoundPrice(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 399.85, RoundPrice(399.85000000001))
	assert.Equal(t, 0.0, RoundPrice(0))
	assert.Equal(t, 10.13, RoundPrice(10.125)) // exact half rounds up
	assert.Equal(t, 10.12, RoundPrice(10.124))
}

func TestCartTotal(t *testing.T) {
	t.Parallel()

	items := []PricedItem{
		{ProductID: 1, Quantity: 5, PriceUnit: 9.99},
		{ProductID: 2, Quantity: 5, PriceUnit: 19.99},
		{ProductID: 3, Quantity: 5, PriceUnit: 49.99},
	}
	assert.Equal(t, 399.85, CartTotal(items))
	assert.Equal(t, 0.0, CartTotal(nil))
}

func TestCartItemsWithPrices(t *testing.T) {
	db := openTestDB(t)
	cart, products := seedCart(t, db)

	items, err := CartItemsWithPrices(db, cart.ID)
	require.NoError(t, err)
	require.Len(t, items, 3)

	byProduct := make(map[uint]PricedItem)
	for _, item := range items {
		byProduct[item.ProductID] = item
	}
	for _, p := range products {
		item, ok := byProduct[p.ID]
		require.True(t, ok)
		assert.Equal(t, 5, item.Quantity)
		assert.Equal(t, p.Price, item.PriceUnit)
	}
	assert.Equal(t, 399.85, CartTotal(items))
}

func TestCartItemsWithPricesEmptyCart(t *testing.T) {
	db := openTestDB(t)

	user := models.User{Email: "empty@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	now := time.Now().UTC()
	cart := models.Cart{Created: now, Modified: now, UserID: user.ID}
	require.NoError(t, db.Create(&cart).Error)

	items, err := CartItemsWithPrices(db, cart.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCreateOrderFromCart(t *testing.T) {
	db := openTestDB(t)
	cart, _ := seedCart(t, db)

	order, err := CreateOrderFromCart(db, cart, 399.85)
	require.NoError(t, err)
	assert.NotZero(t, order.ID)
	assert.Equal(t, models.OrderStatusCreated, order.Status)
	assert.Equal(t, 399.85, order.TotalPrice)
	assert.Equal(t, cart.UserID, order.UserID)
	// cart's created date becomes both timestamps of the order
	assert.True(t, order.Created.Equal(cart.Created))
	assert.True(t, order.Modified.Equal(cart.Created))
}

func TestCreateOrderFromCartBadUser(t *testing.T) {
	db := openTestDB(t)
	cart, _ := seedCart(t, db)
	cart.UserID = 9999

	_, err := CreateOrderFromCart(db, cart, 399.85)
	require.Error(t, err)
	assert.ErrorIs(t, err, dberr.ErrForeignKey)
}

func TestCheckoutCart(t *testing.T) {
	db := openTestDB(t)
	cart, _ := seedCart(t, db)

	// total computed before any mutation must survive into the order
	itemsBefore, err := CartItemsWithPrices(db, cart.ID)
	require.NoError(t, err)
	totalBefore := CartTotal(itemsBefore)

	order, err := CheckoutCart(db, cart.ID)
	require.NoError(t, err)
	assert.Equal(t, totalBefore, order.TotalPrice)
	assert.Equal(t, cart.UserID, order.UserID)
	assert.Equal(t, models.OrderStatusCreated, order.Status)

	// line item count preserved
	var orderItems []models.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).Find(&orderItems).Error)
	require.Len(t, orderItems, len(itemsBefore))

	// order total equals the sum of its frozen line items
	var sum float64
	for _, item := range orderItems {
		sum += float64(item.Quantity) * item.PriceUnit
	}
	assert.Equal(t, order.TotalPrice, RoundPrice(sum))

	// the cart and its items are gone
	var gone models.Cart
	err = db.First(&gone, cart.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	var itemCount int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&itemCount).Error)
	assert.Zero(t, itemCount)
}

func TestCheckoutCartPriceFreezing(t *testing.T) {
	db := openTestDB(t)
	cart, products := seedCart(t, db)

	order, err := CheckoutCart(db, cart.ID)
	require.NoError(t, err)

	// raise every catalog price after checkout
	require.NoError(t, db.Model(&models.Product{}).
		Where("1 = 1").Update("price", gorm.Expr("price * 10")).Error)

	var orderItems []models.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).Find(&orderItems).Error)
	require.Len(t, orderItems, len(products))

	frozen := map[uint]float64{}
	for _, p := range products {
		frozen[p.ID] = p.Price
	}
	for _, item := range orderItems {
		assert.Equal(t, frozen[item.ProductID], item.PriceUnit)
	}
}

func TestCheckoutCartEmpty(t *testing.T) {
	db := openTestDB(t)

	user := models.User{Email: "zero@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	now := time.Now().UTC()
	cart := models.Cart{Created: now, Modified: now, UserID: user.ID}
	require.NoError(t, db.Create(&cart).Error)

	// empty-cart checkout is allowed: zero-total order, zero items
	order, err := CheckoutCart(db, cart.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, order.TotalPrice)

	var itemCount int64
	require.NoError(t, db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount).Error)
	assert.Zero(t, itemCount)

	err = db.First(&models.Cart{}, cart.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCheckoutCartNotFound(t *testing.T) {
	db := openTestDB(t)

	_, err := CheckoutCart(db, 12345)
	require.Error(t, err)
	assert.ErrorIs(t, err, dberr.ErrNotFound)

	// nothing was created along the way
	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.Zero(t, orderCount)
}

func TestDeleteCartOrdering(t *testing.T) {
	db := openTestDB(t)
	cart, _ := seedCart(t, db)

	// cart row cannot go while items reference it
	err := DeleteCart(db, cart.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, dberr.ErrForeignKey)

	count, err := DeleteCartItems(db, cart.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	// second clear is a no-op, not an error
	count, err = DeleteCartItems(db, cart.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, DeleteCart(db, cart.ID))
	assert.ErrorIs(t, DeleteCart(db, cart.ID), dberr.ErrNotFound)
}

func newCheckoutRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/carts/:id/checkout",
		middleware.ValidateIDParam("id", "cartId"),
		CheckoutHandler(db, nil))
	return r
}

func TestCheckoutHandler(t *testing.T) {
	db := openTestDB(t)
	cart, _ := seedCart(t, db)
	r := newCheckoutRouter(db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/carts/%d/checkout", cart.ID), nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"total_price":399.85`)
}

func TestCheckoutHandlerBadRequests(t *testing.T) {
	db := openTestDB(t)
	r := newCheckoutRouter(db)

	// non-numeric id
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/carts/abc/checkout", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	// unknown cart
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/carts/999/checkout", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckoutCartTwice(t *testing.T) {
	db := openTestDB(t)
	cart, _ := seedCart(t, db)

	_, err := CheckoutCart(db, cart.ID)
	require.NoError(t, err)

	// the cart is gone, so a repeat checkout cannot double-charge
	_, err = CheckoutCart(db, cart.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, dberr.ErrNotFound))

	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Where("user_id = ?", cart.UserID).Count(&orderCount).Error)
	assert.EqualValues(t, 1, orderCount)
}

package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"restaurant-api/config"
	"restaurant-api/middleware"
	"restaurant-api/models"
	"restaurant-api/routes"
)

var dbCounter int64

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	// A uniquely named in-memory SQLite database per test, shared across the
	// connection pool but isolated from other tests
	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared", atomic.AddInt64(&dbCounter, 1))
	testDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect test database: " + err.Error())
	}

	err = testDB.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Category{},
		&models.MenuItem{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		panic("failed to auto-migrate models: " + err.Error())
	}
	config.Seed(testDB)

	originalDB := config.DB
	config.SetTestDB(testDB)

	r := gin.New()
	r.Use(gin.Recovery())
	routes.SetupRoutes(r)

	t.Cleanup(func() {
		config.SetTestDB(originalDB)
	})

	return r, testDB
}

// createUser inserts a user, attaches it to the given groups and returns it
// along with a valid bearer token.
func createUser(t *testing.T, db *gorm.DB, username string, staff bool, groups ...string) (*models.User, string) {
	t.Helper()
	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "not-a-real-hash",
		IsStaff:      staff,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	for _, name := range groups {
		var group models.Group
		if err := db.Where("name = ?", name).First(&group).Error; err != nil {
			t.Fatalf("group %s not seeded: %v", name, err)
		}
		if err := db.Model(&user).Association("Groups").Append(&group); err != nil {
			t.Fatalf("failed to add %s to %s: %v", username, name, err)
		}
	}
	token, err := middleware.GenerateToken(&user)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return &user, token
}

// seedMenuItem inserts a category (if needed) and a menu item under it.
func seedMenuItem(t *testing.T, db *gorm.DB, title string, price float64, category *models.Category) models.MenuItem {
	t.Helper()
	item := models.MenuItem{Title: title, Price: price, CategoryID: category.ID}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("failed to seed menu item: %v", err)
	}
	return item
}

func seedCategory(t *testing.T, db *gorm.DB, slug, title string) models.Category {
	t.Helper()
	category := models.Category{Slug: slug, Title: title}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	return category
}

func performRequest(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body %q: %v", recorder.Body.String(), err)
	}
	return body
}

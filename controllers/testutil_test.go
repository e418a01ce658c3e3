package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"fixstore/config"
	dbpkg "fixstore/db"
	"fixstore/models"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Configuration {
	cfg := config.WithDefaults(config.Configuration{Environment: config.EnvDevelopment})
	cfg.Security.JwtSecret = "segredo-de-teste-bem-grande-0123456789"
	return cfg
}

// setupServer sobe o stack completo (rotas + middlewares) contra um sqlite
// descartável. SendEmail default não faz nada; testes que precisam capturar
// ou falhar o envio sobrescrevem a variável.
func setupServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	SetConfigurations(cfg)
	SendEmail = func(to, subject, message string) error { return nil }

	database, err := gorm.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	database.LogMode(false)
	dbpkg.AutoMigrate(database)
	t.Cleanup(func() { database.Close() })

	r := gin.New()
	r.Use(dbpkg.SetDBtoContext(database))
	registerRoutes(r)

	return r, database
}

// registerRoutes monta a mesma tabela de rotas do pacote router. Registrada
// aqui direto porque o binário de teste deste pacote não pode importar
// fixstore/router (ciclo de import).
func registerRoutes(r *gin.Engine) {
	r.POST("/register", Register)
	r.POST("/login", Login)
	r.GET("/logout", Logout)
	r.POST("/forgotPassword", ForgotPassword)
	r.PATCH("/resetPassword/:token", ResetPassword)

	r.GET("/products", GetProducts)
	r.GET("/products/:id", GetProductByID)
	r.POST("/queries", CreateQuery)

	auth := r.Group("")
	auth.Use(AuthRequired())

	auth.GET("/me", Me)
	auth.PATCH("/updatePassword", UpdatePassword)

	auth.GET("/cart", GetCart)
	auth.POST("/cart", AddToCart)
	auth.DELETE("/cart/:id", RemoveFromCart)

	auth.POST("/orders", CreateOrder)
	auth.GET("/orders", GetOrders)
	auth.GET("/orders/:id", GetOrderByID)

	auth.POST("/repairs", CreateRepairJob)
	auth.GET("/repairs", GetRepairJobs)
	auth.GET("/repairs/:id", GetRepairJobByID)

	auth.GET("/quotes", GetQuotes)
	auth.POST("/quotes/:id/accept", AcceptQuote)
	auth.POST("/quotes/:id/reject", RejectQuote)

	admin := auth.Group("/admin")
	admin.Use(Adminizer())

	admin.GET("/users", GetUsers)
	admin.GET("/users/:id", GetUserByID)
	admin.DELETE("/users/:id", DeleteUser)

	admin.POST("/products", CreateProduct)
	admin.PUT("/products/:id", UpdateProduct)
	admin.DELETE("/products/:id", DeleteProduct)

	admin.GET("/orders", GetAllOrders)
	admin.PUT("/orders/:id", UpdateOrderStatus)

	admin.GET("/repairs", GetAllRepairJobs)
	admin.PUT("/repairs/:id", UpdateRepairJob)
	admin.POST("/repairs/:id/quotes", CreateQuote)

	admin.GET("/queries", GetQueries)
	admin.PUT("/queries/:id", AnswerQuery)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// registerUser cria um usuário via endpoint e devolve o token da sessão.
func registerUser(t *testing.T, r *gin.Engine, name, email, password string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/register", gin.H{
		"name":     name,
		"email":    email,
		"password": password,
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// promoteToAdmin vira a chave de role direto no banco.
func promoteToAdmin(t *testing.T, database *gorm.DB, email string) {
	t.Helper()
	err := database.Model(&models.User{}).
		Where("email = ?", email).
		Update("role", models.USER_ROLE_ADMIN).Error
	require.NoError(t, err)
}

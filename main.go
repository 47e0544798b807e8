// @title           Construction Innovation Platform API
// @version         1.0
// @description     Construction project management backend - registers, KPIs, import/export.

// @contact.name   API Support

// @host      localhost:9000

// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @schemes http https
package main

import (
	_ "backend/docs"
	"backend/handlers"
	"backend/repository"
	"backend/storage"
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func CORSConfig() cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{
		"http://localhost:9000",
		"http://localhost:8080",
		"http://localhost:3000",
		"http://localhost:5173",
	}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{
		"Content-Type", "Content-Length", "Accept-Encoding",
		"Accept", "Origin", "X-Requested-With", "Authorization", "User-Agent",
		"Cache-Control", "Referer", "Session_id",
		"Access-Control-Request-Method", "Access-Control-Request-Headers",
	}
	corsConfig.AllowMethods = []string{
		"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD", "PATCH",
	}
	corsConfig.ExposeHeaders = []string{
		"Content-Length", "Authorization", "Content-Type", "Content-Disposition",
	}
	corsConfig.MaxAge = 12 * time.Hour
	return corsConfig
}

// scheduleAutosave persists the store on a cron expression from AUTOSAVE_CRON.
// No schedule means no background saves; every mutation already persists.
func scheduleAutosave(db *sql.DB, store *repository.ProjectStore) *cron.Cron {
	spec := os.Getenv("AUTOSAVE_CRON")
	if spec == "" {
		return nil
	}

	c := cron.New(
		cron.WithLogger(cron.VerbosePrintfLogger(log.New(os.Stdout, "cron: ", log.LstdFlags))),
	)
	_, err := c.AddFunc(spec, func() {
		if handlers.PersistStore(db, store) {
			log.Println("Autosave completed")
		} else {
			log.Println("Autosave failed, will retry on next schedule")
		}
	})
	if err != nil {
		log.Fatalf("Invalid AUTOSAVE_CRON expression %q: %v", spec, err)
	}
	c.Start()
	log.Printf("Autosave scheduled: %s", spec)
	return c
}

func main() {
	db := storage.InitDB()

	var store *repository.ProjectStore
	if snap, ok := handlers.LoadStoreFromStorage(db); ok {
		store = repository.NewStore(snap.Projects, snap.ProjectStore, snap.ActiveProjectID)
		log.Printf("Loaded %d projects from storage (saved at %s)", len(snap.Projects), snap.SavedAt)
	} else {
		store = repository.NewSeededStore()
		log.Println("No saved data found, starting with seed projects")
	}

	autosave := scheduleAutosave(db, store)

	r := gin.Default()
	r.MaxMultipartMemory = 8 << 20

	r.Use(cors.New(CORSConfig()))

	auth := handlers.AuthMiddleware()

	// ==================== 1. AUTH & LOGIN ====================
	r.POST("/api/login", handlers.Login(db))
	r.POST("/api/refresh-token", handlers.RefreshToken(db))
	r.POST("/api/logout", handlers.Logout(db))

	// ==================== 2. PROJECTS ====================
	r.GET("/api/projects", handlers.GetProjects(store))
	r.POST("/api/projects", auth, handlers.CreateProject(store, db))
	r.GET("/api/projects/:id", handlers.GetProject(store))
	r.PUT("/api/projects/:id", auth, handlers.UpdateProject(store, db))
	r.DELETE("/api/projects/:id", auth, handlers.DeleteProject(store, db))
	r.POST("/api/projects/:id/activate", auth, handlers.SwitchProject(store, db))

	// ==================== 3. DRAWINGS ====================
	r.GET("/api/drawings", handlers.GetDrawings(store))
	r.POST("/api/drawings", auth, handlers.CreateDrawing(store, db))
	r.GET("/api/drawings/:id", handlers.GetDrawing(store))
	r.PUT("/api/drawings/:id", auth, handlers.UpdateDrawing(store, db))

	// ==================== 4. MATERIALS ====================
	r.GET("/api/materials", handlers.GetMaterials(store))
	r.POST("/api/materials", auth, handlers.CreateMaterial(store, db))
	r.GET("/api/materials/:id", handlers.GetMaterial(store))
	r.PUT("/api/materials/:id", auth, handlers.UpdateMaterial(store, db))

	// ==================== 5. METHOD STATEMENTS ====================
	r.GET("/api/methods", handlers.GetMethods(store))
	r.POST("/api/methods", auth, handlers.CreateMethod(store, db))
	r.GET("/api/methods/:id", handlers.GetMethod(store))
	r.PUT("/api/methods/:id", auth, handlers.UpdateMethod(store, db))

	// ==================== 6. TESTING & COMMISSIONING ====================
	r.GET("/api/testing", handlers.GetTests(store))
	r.POST("/api/testing", auth, handlers.CreateTest(store, db))
	r.GET("/api/testing/:id", handlers.GetTest(store))
	r.PUT("/api/testing/:id", auth, handlers.UpdateTest(store, db))

	// ==================== 7. NCR / RFI / SITE INSTRUCTIONS ====================
	r.GET("/api/ncr", handlers.GetNCRs(store))
	r.POST("/api/ncr", auth, handlers.CreateNCR(store, db))
	r.GET("/api/ncr/:id", handlers.GetNCR(store))
	r.PUT("/api/ncr/:id", auth, handlers.UpdateNCR(store, db))
	r.POST("/api/ncr/:id/close", auth, handlers.CloseNCR(store, db))

	r.GET("/api/rfi", handlers.GetRFIs(store))
	r.POST("/api/rfi", auth, handlers.CreateRFI(store, db))
	r.GET("/api/rfi/:id", handlers.GetRFI(store))
	r.PUT("/api/rfi/:id", auth, handlers.UpdateRFI(store, db))
	r.POST("/api/rfi/:id/close", auth, handlers.CloseRFI(store, db))

	r.GET("/api/si", handlers.GetSIs(store))
	r.POST("/api/si", auth, handlers.CreateSI(store, db))
	r.GET("/api/si/:id", handlers.GetSI(store))
	r.PUT("/api/si/:id", auth, handlers.UpdateSI(store, db))
	r.POST("/api/si/:id/close", auth, handlers.CloseSI(store, db))

	// ==================== 8. PROCUREMENT ====================
	r.GET("/api/procurement", handlers.GetPurchaseOrders(store))
	r.POST("/api/procurement", auth, handlers.CreatePurchaseOrder(store, db))
	r.GET("/api/procurement/:id", handlers.GetPurchaseOrder(store))
	r.PUT("/api/procurement/:id", auth, handlers.UpdatePurchaseOrder(store, db))

	// ==================== 9. SUBCONTRACTORS ====================
	r.GET("/api/subcontractors", handlers.GetSubcontractors(store))
	r.POST("/api/subcontractors", auth, handlers.CreateSubcontractor(store, db))
	r.GET("/api/subcontractors/:id", handlers.GetSubcontractor(store))
	r.PUT("/api/subcontractors/:id", auth, handlers.UpdateSubcontractor(store, db))

	// ==================== 10. HSE ====================
	r.GET("/api/hse/incidents", handlers.GetIncidents(store))
	r.POST("/api/hse/incidents", auth, handlers.CreateIncident(store, db))
	r.GET("/api/hse/incidents/:id", handlers.GetIncident(store))
	r.PUT("/api/hse/incidents/:id", auth, handlers.UpdateIncident(store, db))
	r.POST("/api/hse/incidents/:id/close", auth, handlers.CloseIncident(store, db))
	r.GET("/api/hse/stats", handlers.GetHSEStats(store))
	r.PUT("/api/hse/stats", auth, handlers.UpdateHSEStats(store, db))

	// ==================== 11. CLOSEOUT ====================
	r.GET("/api/closeout", handlers.GetCloseoutItems(store))
	r.POST("/api/closeout", auth, handlers.CreateCloseoutItem(store, db))
	r.GET("/api/closeout/:id", handlers.GetCloseoutItem(store))
	r.PUT("/api/closeout/:id", auth, handlers.UpdateCloseoutItem(store, db))
	r.POST("/api/closeout/:id/complete", auth, handlers.CompleteCloseoutItem(store, db))

	// ==================== 12. COST CONTROL ====================
	r.GET("/api/cost", handlers.GetCost(store))
	r.PUT("/api/cost", auth, handlers.UpdateCostSummary(store, db))
	r.PUT("/api/cost/categories", auth, handlers.UpsertCostCategory(store, db))

	// ==================== 13. MANPOWER & EQUIPMENT ====================
	r.GET("/api/manpower", handlers.GetManpower(store))
	r.PUT("/api/manpower/today", auth, handlers.UpdateTodayManpower(store, db))
	r.PUT("/api/manpower/weekly", auth, handlers.UpsertWeeklyManpower(store, db))
	r.POST("/api/manpower/equipment", auth, handlers.CreateEquipment(store, db))
	r.PUT("/api/manpower/equipment/:id", auth, handlers.UpdateEquipment(store, db))

	// ==================== 14. PROGRESS & MILESTONES ====================
	r.GET("/api/progress", handlers.GetProgress(store))
	r.POST("/api/progress/milestones", auth, handlers.CreateMilestone(store, db))
	r.PUT("/api/progress/milestones/:id", auth, handlers.UpdateMilestone(store, db))
	r.PUT("/api/progress/scurve", auth, handlers.UpsertSCurvePoint(store, db))
	r.PUT("/api/progress/disciplines", auth, handlers.UpsertDisciplineProgress(store, db))

	// ==================== 15. DASHBOARD & REFERENCE DATA ====================
	r.GET("/api/dashboard", handlers.GetDashboard(store))
	r.GET("/api/users", handlers.GetUsers())
	r.GET("/api/disciplines", handlers.GetDisciplines())

	// ==================== 16. SNAPSHOT PERSISTENCE ====================
	r.POST("/api/snapshot/save", auth, handlers.SaveSnapshot(store, db))
	r.GET("/api/snapshot/export", handlers.ExportSnapshot(store))
	r.POST("/api/snapshot/import", auth, handlers.ImportSnapshot(store, db))

	// ==================== 17. IMPORT / EXPORT ====================
	r.GET("/api/export/:module/csv", handlers.ExportCSV(store))
	r.GET("/api/export/:module/xlsx", handlers.ExportXLSX(store))
	r.GET("/api/export/:module/pdf", handlers.GenerateModulePDF(store))
	r.POST("/api/import/:module/csv", auth, handlers.ImportCSV(store, db))

	// ==================== 18. SWAGGER ====================
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Get port from environment variable or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "9000"
	}

	portInt, err := strconv.Atoi(port)
	if err != nil {
		log.Fatalf("Invalid PORT environment variable: %s. Must be a number.", port)
	}
	if portInt < 0 || portInt > 65535 {
		log.Fatalf("Invalid PORT: %d. Must be between 0 and 65535.", portInt)
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if autosave != nil {
		<-autosave.Stop().Done()
	}

	// Flush the store so nothing is lost between the last mutation and shutdown
	if !handlers.PersistStore(db, store) {
		log.Println("Warning: final save failed during shutdown")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exiting")
}

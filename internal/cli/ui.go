// Package cli es la interfaz de terminal de la aplicación. Consume el núcleo
// únicamente a través de los casos de uso; los textos visibles están en
// francés (idioma del producto).
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/lockre/lockre-pos/internal/application/auth"
	"github.com/lockre/lockre-pos/internal/application/dto"
	"github.com/lockre/lockre-pos/internal/application/reports"
	"github.com/lockre/lockre-pos/internal/application/usecase"
	"github.com/lockre/lockre-pos/internal/domain"
	"github.com/lockre/lockre-pos/internal/domain/entity"
	"github.com/lockre/lockre-pos/pkg/money"
)

// UI agrupa las dependencias de la interfaz de terminal.
type UI struct {
	auth      *auth.AuthUseCase
	setup     *usecase.SetupUseCase
	products  *usecase.ProductUseCase
	sales     *usecase.SaleUseCase
	users     *usecase.UserUseCase
	customers *usecase.CustomerUseCase
	inventory *usecase.InventoryUseCase
	reports   *reports.ReportsUseCase
	fmtMoney  *money.Formatter

	in  *bufio.Reader
	out io.Writer
}

// New construye la interfaz.
func New(
	authUC *auth.AuthUseCase,
	setupUC *usecase.SetupUseCase,
	productUC *usecase.ProductUseCase,
	saleUC *usecase.SaleUseCase,
	userUC *usecase.UserUseCase,
	customerUC *usecase.CustomerUseCase,
	inventoryUC *usecase.InventoryUseCase,
	reportsUC *reports.ReportsUseCase,
	fmtMoney *money.Formatter,
	in *bufio.Reader,
	out io.Writer,
) *UI {
	return &UI{
		auth:      authUC,
		setup:     setupUC,
		products:  productUC,
		sales:     saleUC,
		users:     userUC,
		customers: customerUC,
		inventory: inventoryUC,
		reports:   reportsUC,
		fmtMoney:  fmtMoney,
		in:        in,
		out:       out,
	}
}

// Run ejecuta el bucle principal: asistente de configuración en el primer
// arranque, luego login y menú según el rol.
func (ui *UI) Run(ctx context.Context) error {
	done, err := ui.setup.IsComplete(ctx)
	if err != nil {
		return err
	}
	if !done {
		if err := ui.handleSetup(ctx); err != nil {
			return err
		}
	}

	for {
		session, ok := ui.handleLogin(ctx)
		if !ok {
			return nil
		}
		if session.User.Role == entity.RoleAdmin {
			ui.adminMenu(ctx, session)
		} else {
			ui.vendorMenu(ctx, session)
		}
		ui.auth.Logout(session.ID)
		fmt.Fprintln(ui.out, "Déconnexion réussie.")
	}
}

func (ui *UI) handleSetup(ctx context.Context) error {
	fmt.Fprintln(ui.out, "\n=== Configuration initiale ===")
	fmt.Fprint(ui.out, "Nom de la boutique : ")
	shop := ui.readLine()
	fmt.Fprint(ui.out, "Nom d'utilisateur admin : ")
	username := ui.readLine()
	fmt.Fprint(ui.out, "Mot de passe admin : ")
	password := ui.readLine()
	fmt.Fprint(ui.out, "Nom complet : ")
	fullName := ui.readLine()

	_, err := ui.setup.Complete(ctx, dto.SetupRequest{
		ShopName:      shop,
		AdminUsername: username,
		AdminPassword: password,
		AdminFullName: fullName,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(ui.out, "Configuration terminée.")
	return nil
}

func (ui *UI) handleLogin(ctx context.Context) (*auth.Session, bool) {
	for {
		fmt.Fprintln(ui.out, "\n=== Connexion === (q pour quitter)")
		fmt.Fprint(ui.out, "Nom d'utilisateur : ")
		username := ui.readLine()
		if username == "q" {
			return nil, false
		}
		fmt.Fprint(ui.out, "Mot de passe : ")
		password := ui.readLine()

		session, err := ui.auth.Login(ctx, username, password)
		if err != nil {
			fmt.Fprintln(ui.out, "Identifiants incorrects.")
			continue
		}
		fmt.Fprintf(ui.out, "Bienvenue, %s !\n", session.User.FullName)
		return session, true
	}
}

func (ui *UI) adminMenu(ctx context.Context, session *auth.Session) {
	for {
		fmt.Fprintln(ui.out, "\n--- Menu administrateur ---")
		fmt.Fprintln(ui.out, "1) Tableau de bord")
		fmt.Fprintln(ui.out, "2) Produits")
		fmt.Fprintln(ui.out, "3) Ajouter un produit")
		fmt.Fprintln(ui.out, "4) Enregistrer une vente")
		fmt.Fprintln(ui.out, "5) Vendeurs")
		fmt.Fprintln(ui.out, "6) Ajouter un vendeur")
		fmt.Fprintln(ui.out, "7) Entrée d'inventaire")
		fmt.Fprintln(ui.out, "8) Stock faible")
		fmt.Fprintln(ui.out, "9) Clients")
		fmt.Fprintln(ui.out, "0) Déconnexion")
		fmt.Fprint(ui.out, "> ")

		switch ui.readLine() {
		case "1":
			ui.showDashboard(ctx)
		case "2":
			ui.listProducts(ctx)
		case "3":
			ui.addProduct(ctx)
		case "4":
			ui.recordSale(ctx, session)
		case "5":
			ui.listVendors(ctx)
		case "6":
			ui.addVendor(ctx)
		case "7":
			ui.recordInventory(ctx)
		case "8":
			ui.showLowStock(ctx)
		case "9":
			ui.customersMenu(ctx)
		case "0":
			return
		}
	}
}

func (ui *UI) vendorMenu(ctx context.Context, session *auth.Session) {
	for {
		fmt.Fprintln(ui.out, "\n--- Menu vendeur ---")
		fmt.Fprintln(ui.out, "1) Enregistrer une vente")
		fmt.Fprintln(ui.out, "2) Produits")
		fmt.Fprintln(ui.out, "3) Mes ventes")
		fmt.Fprintln(ui.out, "0) Déconnexion")
		fmt.Fprint(ui.out, "> ")

		switch ui.readLine() {
		case "1":
			ui.recordSale(ctx, session)
		case "2":
			ui.listProducts(ctx)
		case "3":
			ui.showMySales(ctx, session)
		case "0":
			return
		}
	}
}

func (ui *UI) showDashboard(ctx context.Context) {
	summary, err := ui.reports.DashboardSummary(ctx)
	if err != nil {
		ui.printError(err)
		return
	}
	fmt.Fprintln(ui.out, "\n=== Tableau de bord ===")
	fmt.Fprintf(ui.out, "Chiffre d'affaires du jour : %s (%d ventes)\n",
		ui.fmtMoney.Format(summary.TodayRevenue), summary.TodaySales)
	fmt.Fprintf(ui.out, "Chiffre d'affaires du mois : %s\n", ui.fmtMoney.Format(summary.MonthRevenue))
	fmt.Fprintf(ui.out, "Produits : %d | Vendeurs : %d\n", summary.ProductCount, summary.VendorCount)
	if len(summary.RecentSales) == 0 {
		fmt.Fprintln(ui.out, "Aucune vente récente.")
		return
	}
	fmt.Fprintln(ui.out, "Activité récente :")
	for _, s := range summary.RecentSales {
		fmt.Fprintf(ui.out, "  Vente #%d — %d × produit %d — %s\n",
			s.ID, s.Quantity, s.ProductID, ui.fmtMoney.Format(s.Total))
	}
}

func (ui *UI) listProducts(ctx context.Context) {
	products, err := ui.products.List(ctx)
	if err != nil {
		ui.printError(err)
		return
	}
	if len(products) == 0 {
		fmt.Fprintln(ui.out, "Aucun produit.")
		return
	}
	for _, p := range products {
		fmt.Fprintf(ui.out, "#%d %s — %s — stock %d — %s\n",
			p.ID, p.Name, ui.fmtMoney.Format(p.Price), p.Stock, p.Barcode)
	}
}

func (ui *UI) addProduct(ctx context.Context) {
	fmt.Fprint(ui.out, "Nom : ")
	name := ui.readLine()
	fmt.Fprint(ui.out, "Prix : ")
	price, err := ui.readDecimal()
	if err != nil {
		ui.printError(domain.ErrInvalidInput)
		return
	}
	fmt.Fprint(ui.out, "Stock initial : ")
	stock, err := ui.readInt()
	if err != nil {
		ui.printError(domain.ErrInvalidInput)
		return
	}
	fmt.Fprint(ui.out, "Catégorie : ")
	category := ui.readLine()
	fmt.Fprint(ui.out, "Code-barres : ")
	barcode := ui.readLine()

	product, err := ui.products.Create(ctx, dto.CreateProductRequest{
		Name:     name,
		Price:    price,
		Stock:    stock,
		Category: category,
		Barcode:  barcode,
	})
	if err != nil {
		ui.printError(err)
		return
	}
	fmt.Fprintf(ui.out, "Produit #%d créé.\n", product.ID)
}

func (ui *UI) recordSale(ctx context.Context, session *auth.Session) {
	fmt.Fprint(ui.out, "ID du produit : ")
	productID, err := ui.readInt()
	if err != nil {
		ui.printError(domain.ErrInvalidInput)
		return
	}
	fmt.Fprint(ui.out, "Quantité : ")
	quantity, err := ui.readInt()
	if err != nil {
		ui.printError(domain.ErrInvalidInput)
		return
	}
	fmt.Fprint(ui.out, "Client (optionnel) : ")
	customer := ui.readLine()

	sale, err := ui.sales.Register(ctx, dto.RegisterSaleRequest{
		ProductID: int64(productID),
		Quantity:  quantity,
		VendorID:  session.User.ID,
		Customer:  customer,
	})
	if err != nil {
		ui.printError(err)
		return
	}
	fmt.Fprintf(ui.out, "Vente #%d enregistrée — total %s\n", sale.ID, ui.fmtMoney.Format(sale.Total))
}

func (ui *UI) listVendors(ctx context.Context) {
	vendors, err := ui.users.ListVendors(ctx)
	if err != nil {
		ui.printError(err)
		return
	}
	if len(vendors) == 0 {
		fmt.Fprintln(ui.out, "Aucun vendeur.")
		return
	}
	for _, v := range vendors {
		fmt.Fprintf(ui.out, "#%d %s (%s)\n", v.ID, v.FullName, v.Username)
	}
}

func (ui *UI) addVendor(ctx context.Context) {
	fmt.Fprint(ui.out, "Nom d'utilisateur : ")
	username := ui.readLine()
	fmt.Fprint(ui.out, "Mot de passe : ")
	password := ui.readLine()
	fmt.Fprint(ui.out, "Nom complet : ")
	fullName := ui.readLine()

	vendor, err := ui.users.Create(ctx, dto.CreateUserRequest{
		Username: username,
		Password: password,
		FullName: fullName,
		Role:     entity.RoleVendor,
	})
	if err != nil {
		ui.printError(err)
		return
	}
	fmt.Fprintf(ui.out, "Vendeur #%d créé.\n", vendor.ID)
}

func (ui *UI) recordInventory(ctx context.Context) {
	fmt.Fprint(ui.out, "ID du produit : ")
	productID, err := ui.readInt()
	if err != nil {
		ui.printError(domain.ErrInvalidInput)
		return
	}
	fmt.Fprint(ui.out, "Quantité : ")
	quantity, err := ui.readInt()
	if err != nil {
		ui.printError(domain.ErrInvalidInput)
		return
	}
	record, err := ui.inventory.RecordEntry(ctx, int64(productID), quantity)
	if err != nil {
		ui.printError(err)
		return
	}
	fmt.Fprintf(ui.out, "Entrée d'inventaire #%d enregistrée.\n", record.ID)
}

func (ui *UI) showLowStock(ctx context.Context) {
	fmt.Fprint(ui.out, "Seuil : ")
	threshold, err := ui.readInt()
	if err != nil {
		ui.printError(domain.ErrInvalidInput)
		return
	}
	products, err := ui.reports.LowStockProducts(ctx, threshold)
	if err != nil {
		ui.printError(err)
		return
	}
	if len(products) == 0 {
		fmt.Fprintln(ui.out, "Aucun produit sous le seuil.")
		return
	}
	for _, p := range products {
		fmt.Fprintf(ui.out, "#%d %s — stock %d\n", p.ID, p.Name, p.Stock)
	}
}

func (ui *UI) customersMenu(ctx context.Context) {
	fmt.Fprintln(ui.out, "1) Lister  2) Ajouter")
	fmt.Fprint(ui.out, "> ")
	switch ui.readLine() {
	case "1":
		customers, err := ui.customers.List(ctx)
		if err != nil {
			ui.printError(err)
			return
		}
		if len(customers) == 0 {
			fmt.Fprintln(ui.out, "Aucun client.")
			return
		}
		for _, c := range customers {
			fmt.Fprintf(ui.out, "#%d %s — %s\n", c.ID, c.Name, c.Phone)
		}
	case "2":
		fmt.Fprint(ui.out, "Nom : ")
		name := ui.readLine()
		fmt.Fprint(ui.out, "Téléphone : ")
		phone := ui.readLine()
		customer, err := ui.customers.Create(ctx, name, phone)
		if err != nil {
			ui.printError(err)
			return
		}
		fmt.Fprintf(ui.out, "Client #%d créé.\n", customer.ID)
	}
}

func (ui *UI) showMySales(ctx context.Context, session *auth.Session) {
	revenue, err := ui.reports.RevenueByVendor(ctx, session.User.ID)
	if err != nil {
		ui.printError(err)
		return
	}
	fmt.Fprintf(ui.out, "Chiffre d'affaires cumulé : %s\n", ui.fmtMoney.Format(revenue))
}

func (ui *UI) printError(err error) {
	switch {
	case errors.Is(err, domain.ErrDuplicate):
		fmt.Fprintln(ui.out, "Valeur déjà utilisée (doublon).")
	case errors.Is(err, domain.ErrNotFound):
		fmt.Fprintln(ui.out, "Introuvable.")
	case errors.Is(err, domain.ErrInvalidInput):
		fmt.Fprintln(ui.out, "Saisie invalide.")
	default:
		fmt.Fprintf(ui.out, "Erreur : %v\n", err)
	}
}

func (ui *UI) readLine() string {
	line, _ := ui.in.ReadString('\n')
	return strings.TrimSpace(line)
}

func (ui *UI) readInt() (int, error) {
	return strconv.Atoi(ui.readLine())
}

func (ui *UI) readDecimal() (decimal.Decimal, error) {
	return decimal.NewFromString(ui.readLine())
}

package backend

import (
	"database/sql"
	"fmt"

	"github.com/gtteam/shop/internal/model"
	"github.com/gtteam/shop/internal/store"
)

// DefaultUserID identifies the seeded shop user.
const DefaultUserID = "88"

var defaultUser = model.User{
	ID:             DefaultUserID,
	Name:           "Alfred Pennyworth",
	Avatar:         "https://example.com/avatar.jpg",
	ActivityPoints: 4800,
}

var defaultCatalog = []model.Reward{
	{
		ID:              "1",
		Name:            "Tricou GenTech",
		Description:     "Tricou din bumbac cu logo Generația Tech.",
		FullDescription: "Tricou unisex, 100% bumbac, produs in Romania. Cu logo GeneratiaTech.",
		Price:           500,
		Image:           "https://tse1.mm.bing.net/th/id/OIP.7HEf7nj4Omi52_mZgMf1KQHaHQ?pid=Api&P=0&h=220",
		Category:        "GenTech",
		InStock:         true,
		StockCount:      5,
		Physical:        true,
	},
	{
		ID:              "4",
		Name:            "Agenda GenTech",
		Description:     "Agendă 2026 cu branding GT.",
		FullDescription: "Agendă cu design minimalist, ideală pentru planificare și notițe.",
		Price:           150,
		Image:           "https://tse1.mm.bing.net/th/id/OIP.FRSE9IkyY5NPIHqynM9TvwHaGN?pid=Api&P=0&h=220",
		Category:        "GenTech",
		InStock:         true,
		StockCount:      15,
		Physical:        true,
	},
	{
		ID:              "5",
		Name:            "Pix GenTech",
		Description:     "Pix albastru Generația Tech.",
		FullDescription: "Pix ergonomic, cu cerneală de calitate și design simplu, marcat cu logo GT.",
		Price:           100,
		Image:           "https://tse1.mm.bing.net/th/id/OIP.RG0cX6OyjfJtwyiHi0rlkQHaHa?pid=Api&P=0&h=220",
		Category:        "GenTech",
		InStock:         true,
		StockCount:      40,
		Physical:        true,
	},
	{
		ID:              "6",
		Name:            "Rucsac GenTech",
		Description:     "Rucsac de drumeție cu logo GT",
		FullDescription: "Spațios, rezistent și confortabil, ideal pentru deplasări zilnice sau excursii.",
		Price:           400,
		Image:           "https://s13emagst.akamaized.net/products/55585/55584823/images/res_e4d470e3f606a5cfd9c79bb7f3ff46d3.jpg?width=720&height=720&hash=4C48E024D87E821DEC183E79555B4F5F",
		Category:        "GenTech",
		InStock:         true,
		StockCount:      5,
		Physical:        true,
	},
	{
		ID:              "11",
		Name:            "Abonament 7Card",
		Description:     "Acces timp de o lună la rețeaua de săli și activități sportive 7Card.",
		FullDescription: "Abonament valabil 30 de zile, ce oferă acces la sute de locații partenere din țară: săli de fitness, piscine, clase de yoga, dans și multe altele.",
		Price:           1000,
		Image:           "https://i.postimg.cc/6QDb1d5b/7card-logo-well-color.webp",
		Category:        "Abonamente",
		InStock:         true,
		StockCount:      5,
	},
	{
		ID:              "12",
		Name:            "Abonament Netflix",
		Description:     "Acces premium la Netflix pentru o lună.",
		FullDescription: "Bucură-te timp de 30 de zile de filme, seriale și documentare pe una dintre cele mai populare platforme de streaming.",
		Price:           1000,
		Image:           "https://i.postimg.cc/xCv5xhZq/netflix.jpg",
		Category:        "Abonamente",
		InStock:         true,
		StockCount:      10,
	},
	{
		ID:              "13",
		Name:            "Abonament Spotify Premium",
		Description:     "Muzică fără reclame și funcții premium timp de o lună.",
		FullDescription: "Acces la milioane de melodii și podcasturi, offline și fără întreruperi.",
		Price:           1000,
		Image:           "https://i.postimg.cc/X7pFXtgF/spotify.jpg",
		Category:        "Abonamente",
		InStock:         true,
		StockCount:      10,
	},
	{
		ID:              "14",
		Name:            "Abonament Youtube Premium",
		Description:     "YouTube fără reclame și acces la YouTube Music timp de o lună.",
		FullDescription: "Experiență completă pe YouTube: vizionare fără reclame, redare în fundal și acces la YouTube Music Premium.",
		Price:           1000,
		Image:           "https://i.postimg.cc/vZwBMK2G/youtube.jpg",
		Category:        "Abonamente",
		InStock:         true,
		StockCount:      10,
	},
	{
		ID:              "15",
		Name:            "Abonament Canva Premium",
		Description:     "Funcții premium Canva pentru o lună.",
		FullDescription: "Deblochează șabloane exclusive, elemente grafice premium și funcții avansate de design.",
		Price:           1000,
		Image:           "https://i.postimg.cc/QMHxqrHk/canva.jpg",
		Category:        "Abonamente",
		InStock:         true,
		StockCount:      10,
	},
	{
		ID:              "16",
		Name:            "Abonament Figma Pro",
		Description:     "Figma Pro timp de o lună pentru design colaborativ.",
		FullDescription: "Acces la funcțiile avansate Figma Pro pentru proiecte de UI/UX și colaborare în timp real.",
		Price:           1000,
		Image:           "https://i.postimg.cc/NFNzDZym/figma.jpg",
		Category:        "Abonamente",
		InStock:         true,
		StockCount:      5,
	},
	{
		ID:              "17",
		Name:            "Abonament Udemy",
		Description:     "Acces la cursuri online Udemy timp de o lună.",
		FullDescription: "Explorează mii de cursuri în domenii variate: programare, design, business, dezvoltare personală.",
		Price:           1000,
		Image:           "https://i.postimg.cc/05tWTRQJ/udemy.jpg",
		Category:        "Abonamente",
		InStock:         true,
		StockCount:      5,
	},
	{
		ID:              "36",
		Name:            "Badge",
		Description:     "Badge vizibil pe Leaderboards.",
		FullDescription: "Distincție digitală ce apare lângă numele tău pe Leaderboards.",
		Price:           15,
		Image:           "https://i.pinimg.com/736x/f6/40/d6/f640d61bfdb9be2ec29d7261ad02315a.jpg",
		Category:        "Decoratiuni",
		InStock:         true,
		StockCount:      5,
	},
	{
		ID:              "37",
		Name:            "Border Foc",
		Description:     "Efect vizual „foc” pe Leaderboards.",
		FullDescription: "Adaugă un cerc de foc în jurul iconiței tale, pentru un profil care iese în evidență.",
		Price:           25,
		Image:           "https://tse4.mm.bing.net/th/id/OIP.2B7q6eRAI0kc1YZ25pNS7gHaHa?pid=Api&P=0&h=220",
		Category:        "Decoratiuni",
		InStock:         true,
		StockCount:      5,
	},
	{
		ID:              "38",
		Name:            "Rank Discord \"Color\"",
		Description:     "Nume colorat pe serverul Discord GT.",
		FullDescription: "Personalizează culoarea numelui tău pe Discord, pentru un aspect unic și recognoscibil.",
		Price:           30,
		Image:           "https://i.postimg.cc/2S5Sdj7y/discord.jpg",
		Category:        "Decoratiuni",
		InStock:         true,
		StockCount:      100,
	},
	{
		ID:              "39",
		Name:            "Voucher eMAG 150",
		Description:     "Voucher eMAG în valoare de 150 de lei.",
		FullDescription: "Util pentru cumpărături în valoare de 150 RON pe eMAG, valabil conform termenilor și condițiilor magazinului.",
		Price:           1500,
		Image:           "https://i.postimg.cc/qgV2hh3N/emag.png",
		Category:        "Voucher",
		InStock:         true,
		StockCount:      5,
	},
	{
		ID:              "40",
		Name:            "Voucher eMAG 100",
		Description:     "Voucher eMAG în valoare de 100 de lei.",
		FullDescription: "Util pentru cumpărături în valoare de 100 RON pe eMAG, valabil conform termenilor și condițiilor magazinului.",
		Price:           1000,
		Image:           "https://i.postimg.cc/qgV2hh3N/emag.png",
		Category:        "Voucher",
		InStock:         true,
		StockCount:      5,
	},
	{
		ID:              "41",
		Name:            "Voucher eMAG 200",
		Description:     "Voucher eMag în valoare de 200 de lei.",
		FullDescription: "Util pentru cumpărături în valoare de 200 RON pe eMAG, valabil conform termenilor și condițiilor magazinului.",
		Price:           2000,
		Image:           "https://i.postimg.cc/qgV2hh3N/emag.png",
		Category:        "Voucher",
		InStock:         true,
		StockCount:      4,
	},
	{
		ID:              "42",
		Name:            "Voucher eMAG 300",
		Description:     "Voucher eMAG în valoare de 300 de lei.",
		FullDescription: "Util pentru cumpărături în valoare de 300 RON pe eMAG, valabil conform termenilor și condițiilor magazinului.",
		Price:           3000,
		Image:           "https://i.postimg.cc/qgV2hh3N/emag.png",
		Category:        "Voucher",
		InStock:         true,
		StockCount:      2,
	},
	{
		ID:              "43",
		Name:            "Voucher Miele 100",
		Description:     "Voucher Miele în valoare de 100 de lei.",
		FullDescription: "Util pentru achiziția produselor Miele în valoare de 100 RON, inclusiv electrocasnice și accesorii.",
		Price:           1000,
		Image:           "https://i.postimg.cc/1XprKrPG/miele.png",
		Category:        "Voucher",
		InStock:         true,
		StockCount:      5,
	},
	{
		ID:              "44",
		Name:            "Voucher Miele 200",
		Description:     "Voucher Miele în valoare de 200 de lei.",
		FullDescription: "Util pentru achiziția produselor Miele în valoare de 200 RON, inclusiv electrocasnice și accesorii.",
		Price:           2000,
		Image:           "https://i.postimg.cc/1XprKrPG/miele.png",
		Category:        "Voucher",
		InStock:         true,
		StockCount:      3,
	},
	{
		ID:              "45",
		Name:            "Voucher Miele 300",
		Description:     "Voucher Miele în valoare de 300 de lei.",
		FullDescription: "Util pentru achiziția produselor Miele în valoare de 300 RON, inclusiv electrocasnice și accesorii.",
		Price:           3000,
		Image:           "https://i.postimg.cc/1XprKrPG/miele.png",
		Category:        "Voucher",
		InStock:         true,
		StockCount:      2,
	},
	{
		ID:              "46",
		Name:            "Voucher Kaufland 100",
		Description:     "Voucher Kaufland în valoare de 100 de lei",
		FullDescription: "Poate fi utilizat pentru cumpărături în valoare de 100 RON în magazinele Kaufland din România.",
		Price:           1000,
		Image:           "https://i.postimg.cc/5thzkQsn/kaufland.png",
		Category:        "Voucher",
		InStock:         true,
		StockCount:      4,
	},
	{
		ID:              "60",
		Name:            "Philips Smart LED Strip",
		Description:     "Bandă LED inteligentă Philips.",
		FullDescription: "Iluminare personalizabilă, controlabilă prin aplicație sau asistent vocal, ideală pentru decor modern.",
		Price:           4000,
		Image:           "https://tse1.mm.bing.net/th/id/OIP.r55RCnAcyoDb2nRztD7-QgHaGw?pid=Api&P=0&h=220",
		Category:        "Comori",
		InStock:         true,
		StockCount:      5,
	},
	{
		ID:              "61",
		Name:            "Philips Headphones",
		Description:     "Casti Philips.",
		FullDescription: "Super comode, cu sunet clar și bass plăcut. Perfecte pentru muzică, apeluri sau relaxare.",
		Price:           4000,
		Image:           "https://lcdn.altex.ro/media/catalog/product/C/A/CASTAH4205BL.jpg",
		Category:        "Comori",
		InStock:         true,
		StockCount:      2,
		Physical:        true,
	},
	{
		ID:              "62",
		Name:            "JBL Speaker",
		Description:     "Boxa portabila.",
		FullDescription: "JBL Charge, boxă portabilă cu sunet puternic, rezistentă la apă, cu autonomie generoasă și funcție de powerbank.",
		Price:           4000,
		Image:           "https://tse4.mm.bing.net/th/id/OIP.qJ-RoTTtEDHizOwiJQVImwHaE1?pid=Api&P=0&h=220",
		Category:        "Comori",
		InStock:         true,
		StockCount:      1,
		Physical:        true,
	},
}

// Seed populates an empty database with the default catalog and user.
// It is a no-op when rewards already exist, so restarting the service
// against the same file keeps accumulated state.
func Seed(db *sql.DB) error {
	rewards := store.NewRewardStore(db)
	count, err := rewards.Count()
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, r := range defaultCatalog {
		if _, err := rewards.Create(r); err != nil {
			return fmt.Errorf("seed reward %s: %w", r.ID, err)
		}
	}

	users := store.NewUserStore(db)
	if _, err := users.Create(defaultUser); err != nil {
		return fmt.Errorf("seed user: %w", err)
	}
	return nil
}

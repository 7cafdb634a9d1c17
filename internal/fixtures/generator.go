// Package fixtures produces deterministic, intentionally messy source files
// for exercising the pipeline: mixed date formats, inconsistent casing,
// missing values, duplicate keys, and orphan foreign keys.
package fixtures

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
)

// DefaultSeed keeps repeated runs byte-for-byte reproducible.
const DefaultSeed = 42

const (
	customerCount    = 200
	transactionCount = 2500
	sentimentUsers   = 115
)

// Generator writes the three fixture sources into an output directory.
type Generator struct {
	rng    *rand.Rand
	outDir string
}

// New creates a generator seeded for reproducible output.
func New(outDir string, seed int64) *Generator {
	return &Generator{
		rng:    rand.New(rand.NewSource(seed)),
		outDir: outDir,
	}
}

// GenerateAll writes customers.csv, transactions.csv, and sentiment.json.
func (g *Generator) GenerateAll() error {
	if err := os.MkdirAll(g.outDir, 0750); err != nil {
		return fmt.Errorf("failed to create fixture directory: %w", err)
	}

	customers, err := g.GenerateCustomers()
	if err != nil {
		return err
	}
	if err := g.GenerateTransactions(customers); err != nil {
		return err
	}
	return g.GenerateSentiment()
}

// fixtureCustomer keeps every field as written, including blanks, so the
// transaction generator can weight spending by the same messy values the
// pipeline will later have to clean.
type fixtureCustomer struct {
	customerID     string
	name           string
	email          string
	age            string
	city           string
	country        string
	signupDate     string
	favoriteTeam   string
	membershipTier string
	gender         string
}

// GenerateCustomers writes customers.csv: 200 customers plus 4 near-duplicate
// rows sharing a customer_id with one field nudged.
func (g *Generator) GenerateCustomers() ([]fixtureCustomer, error) {
	signupStart := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	signupEnd := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)

	bar := progressbar.Default(customerCount, "customers")
	customers := make([]fixtureCustomer, 0, customerCount+4)

	for i := 1; i <= customerCount; i++ {
		first := choice(g.rng, firstNames)
		last := choice(g.rng, lastNames)
		cityCanonical := weightedChoice(g.rng, cities, cityWeights)

		c := fixtureCustomer{
			customerID:     fmt.Sprintf("CUST-%04d", i),
			name:           first + " " + last,
			email:          g.makeEmail(first, last),
			age:            strconv.Itoa(18 + g.rng.Intn(55)),
			city:           cityCanonical,
			country:        cityCountry[cityCanonical],
			signupDate:     g.messyDate(g.randDate(signupStart, signupEnd)),
			membershipTier: choice(g.rng, tiers),
			gender:         weightedChoice(g.rng, genders, genderWeights),
		}

		// Occasional missing team, staged as empty string rather than null.
		if g.rng.Intn(len(teams)+1) < len(teams) {
			c.favoriteTeam = choice(g.rng, teams)
		}

		if g.rng.Float64() < 0.10 {
			c.age = ""
		}
		if g.rng.Float64() < 0.05 {
			c.email = ""
		}

		switch r := g.rng.Float64(); {
		case r < 0.10:
			c.city = strings.ToLower(c.city)
		case r < 0.18:
			c.city = strings.ToUpper(c.city)
		}

		if g.rng.Float64() < 0.05 {
			c.membershipTier = ""
		}

		if g.rng.Float64() < 0.05 {
			c.gender = ""
		} else if g.rng.Float64() < 0.08 {
			if g.rng.Intn(2) == 0 {
				c.gender = strings.ToUpper(c.gender[:1]) + c.gender[1:]
			} else {
				c.gender = strings.ToUpper(c.gender)
			}
		}

		customers = append(customers, c)
		_ = bar.Add(1)
	}

	// Near-duplicates: same customer_id, one field nudged.
	for i := 0; i < 4; i++ {
		dup := customers[g.rng.Intn(len(customers))]
		switch choice(g.rng, []string{"email", "city", "age"}) {
		case "email":
			parts := strings.Fields(dup.name)
			if len(parts) > 1 {
				dup.email = g.makeEmail(parts[0], parts[1])
			}
		case "city":
			if dup.city == strings.ToLower(dup.city) {
				dup.city = strings.ToUpper(dup.city)
			} else {
				dup.city = strings.ToLower(dup.city)
			}
		case "age":
			if n, err := strconv.Atoi(dup.age); err == nil {
				dup.age = strconv.Itoa(n + 2*g.rng.Intn(2) - 1)
			}
		}
		customers = append(customers, dup)
	}

	g.shuffleCustomers(customers)

	path := filepath.Join(g.outDir, "customers.csv")
	records := make([][]string, 0, len(customers)+1)
	records = append(records, []string{
		"customer_id", "name", "email", "age", "city", "country",
		"signup_date", "favorite_team", "membership_tier", "gender",
	})
	for _, c := range customers {
		records = append(records, []string{
			c.customerID, c.name, c.email, c.age, c.city, c.country,
			c.signupDate, c.favoriteTeam, c.membershipTier, c.gender,
		})
	}
	if err := writeCSV(path, records); err != nil {
		return nil, err
	}

	slog.Info("Wrote customer fixtures", "path", path, "rows", len(customers))
	return customers, nil
}

// GenerateTransactions writes transactions.csv: 2500 transactions weighted by
// membership tier and favorite team, plus 5 exact duplicates and 5 rows
// pointing at customer ids that do not exist.
func (g *Generator) GenerateTransactions(customers []fixtureCustomer) error {
	byID := make(map[string]fixtureCustomer, len(customers))
	ids := make([]string, 0, len(customers))
	for _, c := range customers {
		if _, ok := byID[c.customerID]; !ok {
			byID[c.customerID] = c
			ids = append(ids, c.customerID)
		}
	}

	weights := make([]float64, len(ids))
	for i, id := range ids {
		w, ok := tierTxnWeights[strings.ToLower(byID[id].membershipTier)]
		if !ok {
			w = 1
		}
		weights[i] = w
	}

	txnStart := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	txnEnd := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)

	bar := progressbar.Default(transactionCount, "transactions")
	records := [][]string{{
		"transaction_id", "customer_id", "timestamp", "amount",
		"currency", "category", "merchant", "description",
	}}
	var rows [][]string

	for i := 1; i <= transactionCount; i++ {
		cid := weightedChoice(g.rng, ids, weights)
		cust := byID[cid]

		cat := g.pickCategory(cust)
		merchant := choice(g.rng, merchants[cat])
		amount := g.amountFor(cat, cust)
		currency := "EUR"
		description := merchant + " - " + titleCategory(cat)

		amountStr := strconv.FormatFloat(amount, 'f', 2, 64)
		if g.rng.Float64() < 0.08 {
			amountStr = ""
		} else if g.rng.Float64() < 0.03 {
			amountStr = strconv.FormatFloat(-amount, 'f', 2, 64)
		}

		switch r := g.rng.Float64(); {
		case r < 0.05:
			currency = "eur"
		case r < 0.08:
			currency = "€"
		case r < 0.09:
			currency = "USD"
		}

		if g.rng.Float64() < 0.025 {
			cat = " " + cat
		} else if g.rng.Float64() < 0.025 {
			cat = cat + " "
		}

		rows = append(rows, []string{
			fmt.Sprintf("TXN-%06d", i), cid,
			g.messyTimestamp(g.randDate(txnStart, txnEnd)),
			amountStr, currency, cat, merchant, description,
		})
		_ = bar.Add(1)
	}

	for i := 0; i < 5; i++ {
		dup := rows[g.rng.Intn(len(rows))]
		rows = append(rows, append([]string(nil), dup...))
	}

	for i := 0; i < 5; i++ {
		cat := choice(g.rng, categories)
		rows = append(rows, []string{
			fmt.Sprintf("TXN-%06d", 90000+g.rng.Intn(10000)),
			fmt.Sprintf("CUST-%04d", 300+g.rng.Intn(101)),
			g.messyTimestamp(g.randDate(txnStart, txnEnd)),
			strconv.FormatFloat(10+90*g.rng.Float64(), 'f', 2, 64),
			"EUR", cat, choice(g.rng, merchants[cat]), "Orphan txn",
		})
	}

	g.rng.Shuffle(len(rows), func(i, j int) { rows[i], rows[j] = rows[j], rows[i] })
	records = append(records, rows...)

	path := filepath.Join(g.outDir, "transactions.csv")
	if err := writeCSV(path, records); err != nil {
		return err
	}

	slog.Info("Wrote transaction fixtures", "path", path, "rows", len(rows))
	return nil
}

type sentimentItem struct {
	ID          string         `json:"id"`
	User        string         `json:"user"`
	Source      string         `json:"source"`
	Text        string         `json:"text"`
	PublishedAt string         `json:"published_at"`
	Topic       string         `json:"topic"`
	Tags        []string       `json:"tags"`
	Score       *float64       `json:"sentiment_score"`
	Engagement  map[string]int `json:"engagement"`
}

// GenerateSentiment writes sentiment.json: roughly 300 posts across 115
// handles, about 3% of which reuse a recent post id.
func (g *Generator) GenerateSentiment() error {
	tsStart := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	tsEnd := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)

	handles := g.makeHandles(sentimentUsers)
	bar := progressbar.Default(int64(len(handles)), "sentiment")

	var items []sentimentItem
	idCounter := 1

	for _, handle := range handles {
		numPosts := choice(g.rng, []int{2, 2, 2, 3, 3})
		footballFan := g.rng.Float64() < 0.75

		for p := 0; p < numPosts; p++ {
			id := fmt.Sprintf("SENT-%05d", idCounter)
			if g.rng.Float64() < 0.03 && len(items) > 10 {
				id = items[len(items)-1-g.rng.Intn(10)].ID
			}
			idCounter++

			var topic string
			if footballFan {
				if g.rng.Float64() < 0.85 {
					topic = choice(g.rng, topics)
				} else {
					topic = choice(g.rng, offTopics)
				}
			} else {
				if g.rng.Float64() < 0.7 {
					topic = choice(g.rng, offTopics)
				} else {
					topic = choice(g.rng, topics)
				}
			}

			item := sentimentItem{
				ID:          id,
				User:        handle,
				Source:      choice(g.rng, postSources),
				Text:        g.pickText(topic),
				PublishedAt: g.messyTimestamp(g.randDate(tsStart, tsEnd)),
				Topic:       topic,
				Tags:        tagsFor(topic),
				Engagement: map[string]int{
					"likes":    g.rng.Intn(5001),
					"shares":   g.rng.Intn(1201),
					"comments": g.rng.Intn(801),
				},
			}

			score := g.scoreFor(topic)
			item.Score = &score

			if g.rng.Float64() < 0.10 {
				item.Score = nil
			}
			if g.rng.Float64() < 0.08 {
				item.Engagement = nil
			}

			switch r := g.rng.Float64(); {
			case r < 0.07:
				item.Topic = strings.ToLower(item.Topic)
			case r < 0.12:
				item.Topic = titleCase(item.Topic)
			}

			if g.rng.Float64() < 0.05 {
				item.Text = ""
			}

			items = append(items, item)
		}
		_ = bar.Add(1)
	}

	g.rng.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })

	path := filepath.Join(g.outDir, "sentiment.json")
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal sentiment fixtures: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write sentiment fixtures: %w", err)
	}

	slog.Info("Wrote sentiment fixtures", "path", path, "rows", len(items))
	return nil
}

func (g *Generator) pickCategory(cust fixtureCustomer) string {
	team := strings.TrimSpace(cust.favoriteTeam)
	sportsProb := 0.18
	switch {
	case team == "AC Milan":
		sportsProb = 0.55
	case team != "":
		sportsProb = 0.45
	}

	if g.rng.Float64() < sportsProb {
		city := strings.ToLower(strings.TrimSpace(cust.city))
		switch {
		case city == "milan":
			return weightedChoice(g.rng, sportsCategories, []float64{4, 2, 2, 1})
		case cust.country == "Italy":
			return weightedChoice(g.rng, sportsCategories, []float64{2, 2, 2, 1})
		default:
			return weightedChoice(g.rng, sportsCategories, []float64{1, 2, 1, 3})
		}
	}

	age, err := strconv.Atoi(cust.age)
	if err != nil {
		return choice(g.rng, categories)
	}
	switch {
	case age < 30:
		return weightedChoice(g.rng, categories, []float64{1, 2, 2, 3, 1, 3, 2, 2, 3})
	case age >= 50:
		return weightedChoice(g.rng, categories, []float64{3, 1, 1, 1, 3, 2, 2, 2, 1})
	default:
		return choice(g.rng, categories)
	}
}

func (g *Generator) amountFor(cat string, cust fixtureCustomer) float64 {
	var amount float64
	switch cat {
	case "match_tickets":
		amount = 25 + 325*g.rng.Float64()
	case "sports_merchandise":
		amount = 15 + 185*g.rng.Float64()
	case "streaming":
		amount = 7.99 + 32*g.rng.Float64()
	case "groceries":
		amount = 5 + 115*g.rng.Float64()
	case "dining":
		amount = 8 + 72*g.rng.Float64()
	case "transport":
		amount = 1.50 + 43.5*g.rng.Float64()
	default:
		amount = 5 + 145*g.rng.Float64()
	}

	mult, ok := tierAmountMult[strings.ToLower(strings.TrimSpace(cust.membershipTier))]
	if !ok {
		mult = 1.0
	}
	return float64(int(amount*mult*100+0.5)) / 100
}

func (g *Generator) scoreFor(topic string) float64 {
	var lo, hi float64
	switch {
	case topic == "Weather":
		lo, hi = -0.5, 0.8
	case isFootballTopic(topic):
		lo, hi = -0.5, 0.9
	default:
		lo, hi = -0.3, 0.7
	}
	raw := lo + (hi-lo)*g.rng.Float64()
	return float64(int(raw*1000+0.5)) / 1000
}

func (g *Generator) pickText(topic string) string {
	if texts, ok := tweetsByTopic[topic]; ok {
		return choice(g.rng, texts)
	}
	if isFootballTopic(topic) {
		return choice(g.rng, tweetsFootball)
	}
	return choice(g.rng, tweetsNoise)
}

func (g *Generator) makeEmail(first, last string) string {
	sep := choice(g.rng, []string{".", "_", ""})
	num := ""
	if g.rng.Intn(2) == 0 {
		num = strconv.Itoa(1 + g.rng.Intn(99))
	}
	return strings.ToLower(first) + sep + strings.ToLower(last) + num + "@" + choice(g.rng, emailDomains)
}

func (g *Generator) makeHandles(n int) []string {
	seen := make(map[string]bool, n)
	handles := make([]string, 0, n)
	for len(handles) < n {
		h := "@" + choice(g.rng, handlePrefixes) + choice(g.rng, handleSuffixes)
		if !seen[h] {
			seen[h] = true
			handles = append(handles, h)
		}
	}
	return handles
}

func (g *Generator) randDate(start, end time.Time) time.Time {
	span := int64(end.Sub(start).Seconds())
	return start.Add(time.Duration(g.rng.Int63n(span+1)) * time.Second)
}

// messyDate renders a date in one of several formats, only some of which the
// cleaning layer accepts.
func (g *Generator) messyDate(t time.Time) string {
	layout := choice(g.rng, []string{"2006-01-02", "01/02/2006", "2 Jan 2006"})
	return t.Format(layout)
}

func (g *Generator) messyTimestamp(t time.Time) string {
	layout := choice(g.rng, []string{"2006-01-02T15:04:05Z", "2006-01-02 15:04", "01/02/2006", "02-Jan-2006"})
	return t.Format(layout)
}

func (g *Generator) shuffleCustomers(customers []fixtureCustomer) {
	g.rng.Shuffle(len(customers), func(i, j int) {
		customers[i], customers[j] = customers[j], customers[i]
	})
}

func choice[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}

func weightedChoice(rng *rand.Rand, items []string, weights []float64) string {
	var total float64
	for _, w := range weights {
		total += w
	}
	r := rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return items[i]
		}
	}
	return items[len(items)-1]
}

func isFootballTopic(topic string) bool {
	switch topic {
	case "F1 Racing", "Fashion Week", "Tech News", "Random", "Weather":
		return false
	}
	return true
}

func tagsFor(topic string) []string {
	if topic == "Weather" {
		return []string{"weather"}
	}
	if !isFootballTopic(topic) {
		return []string{strings.ReplaceAll(strings.ToLower(topic), " ", "_")}
	}

	tags := []string{"football"}
	switch topic {
	case "AC Milan":
		tags = append(tags, "ac_milan")
	case "Inter Milan":
		tags = append(tags, "inter")
	case "Juventus":
		tags = append(tags, "juventus")
	case "Napoli":
		tags = append(tags, "napoli")
	case "Roma":
		tags = append(tags, "roma")
	}
	if strings.Contains(topic, "Serie A") {
		tags = append(tags, "serie_a")
	}
	if strings.Contains(topic, "Champions") {
		tags = append(tags, "ucl")
	}
	if strings.Contains(topic, "Transfer") {
		tags = append(tags, "transfers")
	}
	return tags
}

func titleCategory(cat string) string {
	return titleCase(strings.ReplaceAll(cat, "_", " "))
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

func writeCSV(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

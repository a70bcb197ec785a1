package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"iter"
	"log/slog"
	"os"

	"github.com/poiesic/corpora"
	"github.com/poiesic/corpora/core"
)

// articleDoc is the JSONL wire format for seeding: one article per line.
type articleDoc struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Abstract string `json:"abstract"`
	Body     string `json:"body"`
}

var sampleArticles = []articleDoc{
	{
		ID:       "sample-0001",
		Title:    "Transmission dynamics of seasonal influenza in urban populations.",
		Abstract: "We analyzed transmission patterns across three metropolitan areas. Contact rates varied strongly by age group. School closures reduced peak incidence by a third.",
		Body:     "Influenza circulates annually with pronounced winter seasonality. Our surveillance network recorded 48,000 laboratory-confirmed cases over five seasons. Household transmission accounted for the largest share of secondary infections. Vaccination coverage among adults remained below forty percent throughout the study period.",
	},
	{
		ID:       "sample-0002",
		Title:    "Genomic surveillance of emerging coronavirus variants.",
		Abstract: "Whole-genome sequencing identified twelve distinct lineages. Two lineages carried mutations associated with increased binding affinity.",
		Body:     "Samples were collected from sentinel hospitals between January and August. Sequencing depth averaged 800x across the spike gene. Phylogenetic analysis placed the novel lineages within clade 19A. Continued monitoring is warranted as recombination events remain possible.",
	},
	{
		ID:       "sample-0003",
		Title:    "Hospital capacity planning under epidemic uncertainty.",
		Abstract: "A stochastic model projected intensive care demand under five intervention scenarios.",
		Body:     "Bed occupancy is the binding constraint during epidemic surges. The model couples a compartmental transmission core with a queueing representation of admissions. Staffing shortages amplified projected mortality more than physical bed limits. Early intervention flattened demand enough to stay within surge capacity in four of five scenarios.",
	},
	{
		ID:       "sample-0004",
		Title:    "Serological evidence of prior exposure in healthcare workers.",
		Abstract: "Antibody prevalence among frontline staff was 2.4 times the community baseline. Prevalence correlated with role and ward assignment.",
		Body:     "We enrolled 1,200 healthcare workers across four facilities. Serum samples were assayed for IgG against the nucleocapsid protein. Emergency department staff showed the highest seroprevalence. Use of respirators was associated with markedly lower odds of seropositivity.",
	},
	{
		ID:       "sample-0005",
		Title:    "Wastewater monitoring as an early warning signal.",
		Abstract: "Viral RNA concentrations in municipal wastewater preceded case counts by six days.",
		Body:     "Composite samples were drawn daily from two treatment plants. RNA was quantified by digital PCR against a process control. The wastewater signal led clinical case reports consistently across three epidemic waves. Sampling cost per covered resident was a small fraction of testing-based surveillance.",
	},
}

var (
	dbPath       = flag.String("db", "./corpus_db", "path to corpus database directory")
	seedFileName = flag.String("src", "", "JSONL file of articles (id, title, abstract, body)")
	batchSize    = flag.Int("batch", 500, "articles per write batch")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

// articlesFromFile returns an iterator over JSONL-encoded articles in a file.
// Malformed lines are logged and skipped.
func articlesFromFile(filename string) (iter.Seq[*core.ArticleRecord], error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	return func(yield func(*core.ArticleRecord) bool) {
		defer f.Close()
		scanner := bufio.NewScanner(f)
		// Article bodies routinely exceed the default token limit
		scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)
		line := 0
		for scanner.Scan() {
			line++
			var doc articleDoc
			if err := json.Unmarshal(scanner.Bytes(), &doc); err != nil {
				slog.Warn("skipping malformed line", "line", line, "err", err)
				continue
			}
			if !yield(docToRecord(&doc)) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			slog.Error("error reading seed file", "err", err)
		}
	}, nil
}

// articlesFromSlice returns an iterator over the embedded sample articles.
func articlesFromSlice(docs []articleDoc) iter.Seq[*core.ArticleRecord] {
	return func(yield func(*core.ArticleRecord) bool) {
		for i := range docs {
			if !yield(docToRecord(&docs[i])) {
				return
			}
		}
	}
}

func docToRecord(doc *articleDoc) *core.ArticleRecord {
	return &core.ArticleRecord{
		ID:       doc.ID,
		Title:    doc.Title,
		Abstract: doc.Abstract,
		Body:     doc.Body,
	}
}

// seedBatched reads from a source iterator and stores articles in batches.
func seedBatched(ctx context.Context, db *corpora.Database, source iter.Seq[*core.ArticleRecord], batchSize int) (int, error) {
	repo := db.ArticleRepository()
	batch := make([]*core.ArticleRecord, 0, batchSize)
	total := 0

	for article := range source {
		batch = append(batch, article)
		if len(batch) == batchSize {
			if err := repo.AddArticles(ctx, batch...); err != nil {
				return total, err
			}
			total += len(batch)
			batch = batch[:0]
		}
	}

	// Store any remaining articles
	if len(batch) > 0 {
		if err := repo.AddArticles(ctx, batch...); err != nil {
			return total, err
		}
		total += len(batch)
	}

	return total, nil
}

func main() {
	db, err := corpora.NewDatabase(*dbPath)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	ctx := context.Background()

	// Determine source of seed data
	var source iter.Seq[*core.ArticleRecord]
	if seedFileName != nil && *seedFileName != "" {
		source, err = articlesFromFile(*seedFileName)
		if err != nil {
			panic(err)
		}
	} else {
		source = articlesFromSlice(sampleArticles)
	}

	total, err := seedBatched(ctx, db, source, *batchSize)
	if err != nil {
		panic(err)
	}

	slog.Info("seeding complete", "articles", total, "db", *dbPath)
}

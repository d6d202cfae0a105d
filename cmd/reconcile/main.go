package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"vendor_recon/pkg/core/agent"
	"vendor_recon/pkg/core/diagnosis"
	"vendor_recon/pkg/core/ingest"
	"vendor_recon/pkg/core/pipeline"
	"vendor_recon/pkg/core/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, assuming environment variables are set.")
	}

	var (
		vendorName = flag.String("vendor", "", "vendor name to reconcile (required)")
		sourceDir  = flag.String("dir", ".", "directory holding <source>.txt or <source>.html report files")
		configPath = flag.String("config", "", "optional yaml agent config (provider selection)")
		provider   = flag.String("provider", "", "reasoning provider override: gemini, deepseek or direct")
		diagnose   = flag.Bool("diagnose", false, "run the reasoning diagnosis stage")
	)
	flag.Parse()

	if *vendorName == "" {
		fmt.Fprintln(os.Stderr, "usage: reconcile -vendor \"ACME Distribuidora\" -dir ./reports [-diagnose]")
		os.Exit(2)
	}

	ctx := context.Background()

	texts, err := ingest.LoadSources(*sourceDir)
	if err != nil {
		log.Fatalf("failed to load report sources: %v", err)
	}

	orch := pipeline.NewOrchestrator()

	if os.Getenv("DATABASE_URL") != "" {
		if err := store.InitDB(ctx); err != nil {
			log.Fatalf("database init failed: %v", err)
		}
		defer store.Close()
	} else {
		log.Println("DATABASE_URL not set, skipping persistence")
		orch.SetRepository(nil)
	}

	if *diagnose {
		// "direct" bypasses the provider registry and holds one Gemini
		// client for the whole run; useful for batch reconciliations.
		if *provider == "direct" {
			reconAgent, err := diagnosis.NewReconAgent(ctx)
			if err != nil {
				log.Fatalf("failed to start direct Gemini agent: %v", err)
			}
			defer reconAgent.Close()
			orch.SetDiagnoser(diagnosis.NewEngine(reconAgent))
		} else {
			agentCfg := agent.Config{ActiveProvider: "gemini"}
			if *configPath != "" {
				data, err := os.ReadFile(*configPath)
				if err != nil {
					log.Fatalf("failed to read agent config: %v", err)
				}
				if err := yaml.Unmarshal(data, &agentCfg); err != nil {
					log.Fatalf("failed to parse agent config: %v", err)
				}
			}
			mgr := agent.NewManager(agentCfg)
			p := mgr.GetProvider("diagnosis")
			if *provider != "" {
				if p = mgr.GetProviderByName(*provider); p == nil {
					log.Fatalf("unknown provider %q", *provider)
				}
			}
			orch.SetDiagnoser(diagnosis.NewEngine(p))
		}
	}

	report, err := orch.Run(ctx, *vendorName, texts)
	if err != nil {
		log.Fatalf("reconciliation failed: %v", err)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("failed to render report: %v", err)
	}
	fmt.Println(string(out))
}

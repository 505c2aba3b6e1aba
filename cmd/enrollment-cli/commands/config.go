package commands

import (
	"os"

	"enrollment-backend/lib/configutil"
	"enrollment-backend/lib/restyutil"
	"enrollment-backend/lib/scrapers/classschedule"
	"enrollment-backend/lib/util/serviceutil"
)

type Config struct {
	BaseUrl          string `json:"base_url"`
	PrimarySubject   string `json:"primary_subject"`
	SecondarySubject string `json:"secondary_subject"`
	// when set, every HTTP exchange gets dumped under this directory
	DebugDumpDir string `json:"debug_dump_dir"`
}

const defaultBaseUrl = "https://student.apps.utah.edu/uofu/stu/ClassSchedules/main"

func loadConfig() Config {
	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to read config", err)
	}
	if cfg.BaseUrl == "" {
		cfg.BaseUrl = defaultBaseUrl
	}
	if cfg.PrimarySubject == "" {
		cfg.PrimarySubject = "ASTR"
	}
	if cfg.SecondarySubject == "" {
		cfg.SecondarySubject = "PHYS"
	}
	return cfg
}

func createClient(cfg Config) *classschedule.Client {
	var debug restyutil.InstrumentOutput
	if cfg.DebugDumpDir != "" {
		debug = restyutil.NewFilesystemOutput(cfg.DebugDumpDir)
	}
	client, err := classschedule.NewClient(classschedule.ClientOptions{
		BaseUrl: cfg.BaseUrl,
		Debug:   debug,
	})
	if err != nil {
		serviceutil.Fatal("failed to initialize class schedule client", err)
	}
	return client
}

// Package config holds the runtime configuration for the balancete
// optimizer. The transform itself is not configurable (the Tiny ERP export
// schema is fixed by contract); configuration covers ambient concerns only,
// primarily logging. Values are loaded from BALANCETE_* environment
// variables and optionally merged from a balancete.yaml file next to the
// working directory.
package config

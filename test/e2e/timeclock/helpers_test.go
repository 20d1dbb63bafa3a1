package timeclock_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aussiebroadwan/timeclock/pkg/clocksdk"
	"github.com/aussiebroadwan/timeclock/pkg/jwtx"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for timeclock service end-to-end
 * tests: container setup, token minting and seed data.
 */

const (
	testImageName = "timeclock-test:latest"

	// Shared secret between the tests (standing in for the IdP) and the
	// service under test.
	jwtSecret = "e2e-test-secret-0123456789abcdef"
	jwtIssuer = "timeclock-e2e-idp"

	siteLat      = -33.8688
	siteLng      = 151.2093
	siteRadiusKm = 1.0
)

var (
	adminScopes = []string{"clock:write", "admin:read", "admin:write"}
	staffScopes = []string{"clock:write"}
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Timeclock Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Timeclock Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image if it doesn't exist.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/timeclock/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupTimeclockContainer starts the service in a container and returns the
// base URL. Rate limits are raised so rapid test requests don't trip them.
func setupTimeclockContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"TIMECLOCK_JWT_SECRET":    jwtSecret,
			"TIMECLOCK_JWT_ISSUER":    jwtIssuer,
			"TIMECLOCK_DATABASE_FILE": "/timeclock.db",
			"ENV":                     "test",
			"LOG_LEVEL":               "info",
			"LOG_FORMAT":              "json",
			// Increase rate limits for E2E tests to prevent test failures
			"RATELIMIT_STRICT_REQUESTS":   "1000",
			"RATELIMIT_STRICT_WINDOW_SEC": "60",
			"RATELIMIT_STRICT_BURST":      "1000",
			"RATELIMIT_MODERATE_REQUESTS": "1000",
			"RATELIMIT_MODERATE_BURST":    "1000",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// mintToken signs an access token the way the external IdP would.
func mintToken(t *testing.T, subject, email, name string, scopes []string) string {
	t.Helper()

	signer := &jwtx.HS256Signer{
		Secret: []byte(jwtSecret),
		Issuer: jwtIssuer,
		TTL:    time.Hour,
	}
	token, err := signer.Mint(subject, email, name, scopes)
	require.NoError(t, err)
	return token
}

// seedAdmin registers an admin user and returns a client authenticated as
// them. The first admin is created through the API with a token whose email
// claim matches the roster entry.
func seedAdmin(t *testing.T, baseURL string) *clocksdk.Client {
	t.Helper()

	adminToken := mintToken(t, "e2e-admin", "admin@example.com", "Admin", adminScopes)
	admin := clocksdk.NewClient(baseURL, adminToken)

	_, err := admin.CreateUser(t.Context(), clocksdk.CreateUserRequest{
		Email: "admin@example.com",
		Name:  "Admin",
		Role:  "admin",
	})
	require.NoError(t, err)

	return admin
}

// seedStaff registers a staff user and returns a client authenticated as them.
func seedStaff(t *testing.T, admin *clocksdk.Client, baseURL, email, name string) *clocksdk.Client {
	t.Helper()

	user, err := admin.CreateUser(t.Context(), clocksdk.CreateUserRequest{
		Email: email,
		Name:  name,
		Role:  "staff",
	})
	require.NoError(t, err)

	token := mintToken(t, user.ID, email, name, staffScopes)
	return clocksdk.NewClient(baseURL, token)
}

// seedLocation registers the test site geofence.
func seedLocation(t *testing.T, admin *clocksdk.Client) clocksdk.Location {
	t.Helper()

	lat, lng, radius := siteLat, siteLng, siteRadiusKm
	location, err := admin.CreateLocation(t.Context(), clocksdk.CreateLocationRequest{
		Name:     "Test Site",
		Lat:      &lat,
		Lng:      &lng,
		RadiusKm: &radius,
	})
	require.NoError(t, err)
	return location
}

func ptr(v float64) *float64 { return &v }

package rest_test

import (
	"context"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestRest(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "REST Transport Suite")
}

// The served OpenAPI document is the public contract; this keeps it
// loadable, internally consistent and covering every mounted route.
var _ = ginkgo.Describe("OpenAPI document", func() {
	var doc *openapi3.T

	ginkgo.BeforeEach(func() {
		loader := openapi3.NewLoader()
		var err error
		doc, err = loader.LoadFromFile("../../../api/openapi.yml")
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
	})

	ginkgo.It("should validate against the OpenAPI 3 schema", func() {
		gomega.Expect(doc.Validate(context.Background())).To(gomega.Succeed())
	})

	ginkgo.It("should document every mounted route", func() {
		for _, path := range []string{
			"/ping",
			"/health",
			"/auth/register",
			"/auth/login",
			"/auth/refresh",
			"/users/me",
			"/scope/{scope}",
			"/departments",
			"/departments/{id}",
			"/units",
			"/units/{id}",
			"/designations",
			"/designations/{id}",
			"/locations",
			"/locations/{id}",
			"/headofunits",
			"/headofunits/{id}",
		} {
			gomega.Expect(doc.Paths.Find(path)).ToNot(gomega.BeNil(), "missing path %s", path)
		}
	})

	ginkgo.It("should require the write scopes to be guarded by bearer auth", func() {
		departments := doc.Paths.Find("/departments")
		gomega.Expect(departments.Post.Security).ToNot(gomega.BeNil())
	})

	ginkgo.It("should keep validation failures on the 422 status", func() {
		departments := doc.Paths.Find("/departments")
		gomega.Expect(departments.Post.Responses.Status(422)).ToNot(gomega.BeNil())
	})
})

package validation

import (
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestValidation(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Validation Suite")
}

var _ = ginkgo.Describe("Builder", func() {
	ginkgo.It("should return nil when every field passes", func() {
		v := New()
		v.Field("name", "Engineering").Required().MaxLength(20)

		gomega.Expect(v.Err()).To(gomega.BeNil())
	})

	ginkgo.It("should report a required string field", func() {
		v := New()
		v.Field("name", "").Required()

		err := v.Err()
		gomega.Expect(err).ToNot(gomega.BeNil())
		gomega.Expect(err.Fields["name"]).To(gomega.Equal([]string{"The name field is required."}))
	})

	ginkgo.It("should report a required int64 field when zero", func() {
		v := New()
		v.Field("department_id", int64(0)).Required()

		err := v.Err()
		gomega.Expect(err).ToNot(gomega.BeNil())
		gomega.Expect(err.Fields).To(gomega.HaveKey("department_id"))
	})

	ginkgo.It("should stop at the first failing rule per field", func() {
		v := New()
		v.Field("name", "").Required().MaxLength(20)

		err := v.Err()
		gomega.Expect(err.Fields["name"]).To(gomega.HaveLen(1))
	})

	ginkgo.It("should enforce maximum length", func() {
		v := New()
		v.Field("name", "a department name far too long").MaxLength(20)

		err := v.Err()
		gomega.Expect(err.Fields["name"]).To(gomega.ContainElement("The name field must not be greater than 20 characters."))
	})

	ginkgo.It("should enforce minimum length only on non-empty values", func() {
		v := New()
		v.Field("password", "abc").MinLength(8)

		err := v.Err()
		gomega.Expect(err.Fields["password"]).To(gomega.ContainElement("The password field must be at least 8 characters."))

		v2 := New()
		v2.Field("password", "").MinLength(8)
		gomega.Expect(v2.Err()).To(gomega.BeNil())
	})

	ginkgo.It("should validate email format", func() {
		v := New()
		v.Field("email", "nope").Email()

		err := v.Err()
		gomega.Expect(err.Fields["email"]).To(gomega.ContainElement("The email field must be a valid email address."))

		v2 := New()
		v2.Field("email", "someone@example.com").Email()
		gomega.Expect(v2.Err()).To(gomega.BeNil())
	})

	ginkgo.It("should collect errors across multiple fields", func() {
		v := New()
		v.Field("name", "").Required()
		v.Field("description", "").Required()

		err := v.Err()
		gomega.Expect(err.Fields).To(gomega.HaveLen(2))
	})

	ginkgo.It("should run custom validators", func() {
		v := New()
		v.Field("status", "archived").Custom(func(value interface{}) (string, bool) {
			if value == "archived" {
				return "The selected status is invalid.", false
			}
			return "", true
		})

		err := v.Err()
		gomega.Expect(err.Fields["status"]).To(gomega.ContainElement("The selected status is invalid."))
	})
})

var _ = ginkgo.Describe("Messages", func() {
	ginkgo.It("should format the taken message", func() {
		gomega.Expect(TakenMessage("email")).To(gomega.Equal("The email has already been taken."))
	})

	ginkgo.It("should format the invalid reference message", func() {
		gomega.Expect(InvalidReferenceMessage("unit_id")).To(gomega.Equal("The selected unit_id is invalid."))
	})
})

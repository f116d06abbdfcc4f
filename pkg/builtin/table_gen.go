package builtin

import "github.com/oisee/oidreg/pkg/oid"

// Built-in entry list. The OIDs and their order follow
// testdata/dictionary.txt: NIDs are assigned in dictionary order starting
// at 1; NID 0 (oid.Undef) is reserved and never assigned here. This file is
// not the output of cmd/oidgen for that dictionary: its constant names
// (NIDCommonName rather than NIDCN) and several short and long names (for
// example LN "RSA Encryption" rather than "RSAEncryption") differ.

// Well-known NIDs, in the order cmd/oidgen assigned them. Dynamically
// registered NIDs start at Default.Count(), one past the last of these.
const (
	NIDCommonName oid.NID = iota + 1
	NIDCountryName
	NIDLocalityName
	NIDStateOrProvinceName
	NIDOrganizationName
	NIDOrganizationalUnitName
	NIDSurname
	NIDGivenName
	NIDSerialNumber
	NIDEmailAddress
	NIDDomainComponent
	NIDDNQualifier
	NIDRSAEncryption
	NIDSHA256WithRSAEncryption
	NIDSHA1WithRSAEncryption
	NIDMD5
	NIDSHA1
	NIDSHA256
	NIDSHA384
	NIDSHA512
	NIDECPublicKey
	NIDPrime256v1
	NIDEd25519
	NIDPKCS9ContentType
	NIDPKCS7Data
	NIDPKCS7SignedData
	NIDBasicConstraints
	NIDKeyUsage
	NIDSubjectKeyIdentifier
	NIDAuthorityKeyIdentifier
	NIDSubjectAltName
	NIDExtKeyUsage
	NIDCRLDistributionPoints
	NIDCertificatePolicies
	NIDAuthorityInfoAccess
)

var rawEntries = []oid.Entry{
	{NID: NIDCommonName, DER: []byte{0x55, 0x04, 0x03}, SN: "CN", LN: "commonName"},
	{NID: NIDCountryName, DER: []byte{0x55, 0x04, 0x06}, SN: "C", LN: "countryName"},
	{NID: NIDLocalityName, DER: []byte{0x55, 0x04, 0x07}, SN: "L", LN: "localityName"},
	{NID: NIDStateOrProvinceName, DER: []byte{0x55, 0x04, 0x08}, SN: "ST", LN: "stateOrProvinceName"},
	{NID: NIDOrganizationName, DER: []byte{0x55, 0x04, 0x0A}, SN: "O", LN: "organizationName"},
	{NID: NIDOrganizationalUnitName, DER: []byte{0x55, 0x04, 0x0B}, SN: "OU", LN: "organizationalUnitName"},
	{NID: NIDSurname, DER: []byte{0x55, 0x04, 0x04}, SN: "SN", LN: "surname"},
	{NID: NIDGivenName, DER: []byte{0x55, 0x04, 0x2A}, LN: "givenName"},
	{NID: NIDSerialNumber, DER: []byte{0x55, 0x04, 0x05}, LN: "serialNumber"},
	{NID: NIDEmailAddress, DER: []byte{0x2A, 0x86, 0x48, 0x86, 0xF7, 0x0D, 0x01, 0x09, 0x01}, SN: "Email", LN: "emailAddress"},
	{NID: NIDDomainComponent, DER: []byte{0x09, 0x92, 0x26, 0x89, 0x93, 0xF2, 0x2C, 0x64, 0x01, 0x19}, SN: "DC", LN: "domainComponent"},
	{NID: NIDDNQualifier, DER: []byte{0x55, 0x04, 0x2E}, LN: "dnQualifier"},

	{NID: NIDRSAEncryption, DER: []byte{0x2A, 0x86, 0x48, 0x86, 0xF7, 0x0D, 0x01, 0x01, 0x01}, SN: "rsaEncryption", LN: "RSA Encryption"},
	{NID: NIDSHA256WithRSAEncryption, DER: []byte{0x2A, 0x86, 0x48, 0x86, 0xF7, 0x0D, 0x01, 0x01, 0x0B}, SN: "RSA-SHA256", LN: "sha256WithRSAEncryption"},
	{NID: NIDSHA1WithRSAEncryption, DER: []byte{0x2A, 0x86, 0x48, 0x86, 0xF7, 0x0D, 0x01, 0x01, 0x05}, SN: "RSA-SHA1", LN: "sha1WithRSAEncryption"},
	{NID: NIDMD5, DER: []byte{0x2A, 0x86, 0x48, 0x86, 0xF7, 0x0D, 0x02, 0x05}, SN: "MD5", LN: "md5"},
	{NID: NIDSHA1, DER: []byte{0x2B, 0x0E, 0x03, 0x02, 0x1A}, SN: "SHA1", LN: "sha1"},
	{NID: NIDSHA256, DER: []byte{0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x01}, SN: "SHA256", LN: "sha256"},
	{NID: NIDSHA384, DER: []byte{0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x02}, SN: "SHA384", LN: "sha384"},
	{NID: NIDSHA512, DER: []byte{0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x03}, SN: "SHA512", LN: "sha512"},
	{NID: NIDECPublicKey, DER: []byte{0x2A, 0x86, 0x48, 0xCE, 0x3D, 0x02, 0x01}, SN: "id-ecPublicKey", LN: "EC Public Key"},
	{NID: NIDPrime256v1, DER: []byte{0x2A, 0x86, 0x48, 0xCE, 0x3D, 0x03, 0x01, 0x07}, SN: "prime256v1", LN: "prime256v1"},
	{NID: NIDEd25519, DER: []byte{0x2B, 0x65, 0x70}, SN: "ED25519", LN: "Ed25519"},

	{NID: NIDPKCS9ContentType, DER: []byte{0x2A, 0x86, 0x48, 0x86, 0xF7, 0x0D, 0x01, 0x09, 0x03}, SN: "contentType", LN: "contentType"},
	{NID: NIDPKCS7Data, DER: []byte{0x2A, 0x86, 0x48, 0x86, 0xF7, 0x0D, 0x01, 0x07, 0x01}, SN: "pkcs7-data", LN: "pkcs7-data"},
	{NID: NIDPKCS7SignedData, DER: []byte{0x2A, 0x86, 0x48, 0x86, 0xF7, 0x0D, 0x01, 0x07, 0x02}, SN: "pkcs7-signedData", LN: "pkcs7-signedData"},

	{NID: NIDBasicConstraints, DER: []byte{0x55, 0x1D, 0x13}, SN: "basicConstraints", LN: "X509v3 Basic Constraints"},
	{NID: NIDKeyUsage, DER: []byte{0x55, 0x1D, 0x0F}, SN: "keyUsage", LN: "X509v3 Key Usage"},
	{NID: NIDSubjectKeyIdentifier, DER: []byte{0x55, 0x1D, 0x0E}, SN: "subjectKeyIdentifier", LN: "X509v3 Subject Key Identifier"},
	{NID: NIDAuthorityKeyIdentifier, DER: []byte{0x55, 0x1D, 0x23}, SN: "authorityKeyIdentifier", LN: "X509v3 Authority Key Identifier"},
	{NID: NIDSubjectAltName, DER: []byte{0x55, 0x1D, 0x11}, SN: "subjectAltName", LN: "X509v3 Subject Alternative Name"},
	{NID: NIDExtKeyUsage, DER: []byte{0x55, 0x1D, 0x25}, SN: "extendedKeyUsage", LN: "X509v3 Extended Key Usage"},
	{NID: NIDCRLDistributionPoints, DER: []byte{0x55, 0x1D, 0x1F}, SN: "crlDistributionPoints", LN: "X509v3 CRL Distribution Points"},
	{NID: NIDCertificatePolicies, DER: []byte{0x55, 0x1D, 0x20}, SN: "certificatePolicies", LN: "X509v3 Certificate Policies"},
	{NID: NIDAuthorityInfoAccess, DER: []byte{0x2B, 0x06, 0x01, 0x05, 0x05, 0x07, 0x01, 0x01}, SN: "authorityInfoAccess", LN: "Authority Information Access"},
}
